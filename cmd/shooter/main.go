package main

import (
	"flag"
	"log"
	"os"

	"chosenoffset.com/topdown/internal/assets"
	"chosenoffset.com/topdown/internal/config"
	"chosenoffset.com/topdown/internal/game"
	ebitenrender "chosenoffset.com/topdown/internal/render/ebiten"
)

// options are the command-line flags.
type options struct {
	configPath string
	assetDir   string
	debug      bool
}

func newFlagSet(name string) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", "scene.yaml", "Scene config file (YAML or JSON)")
	fs.StringVar(&opts.assetDir, "assets", "", "Asset directory (overrides the config)")
	fs.BoolVar(&opts.debug, "debug", false, "Draw physics bodies (overrides the config when given)")
	return fs, opts
}

// applyOverrides copies the flags given on the command line onto cfg.
// Flags left at their defaults don't touch the config.
func applyOverrides(fs *flag.FlagSet, opts *options, cfg *config.Scene) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.Assets.Dir = opts.assetDir
		case "debug":
			cfg.Debug = opts.debug
		}
	})
}

func main() {
	fs, opts := newFlagSet(os.Args[0])
	fs.Parse(os.Args[1:])

	log.Printf("Loading scene config: %s", opts.configPath)
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyOverrides(fs, opts, cfg)

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	lib, err := assets.Load(cfg.Assets, loader)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	g, err := game.New(cfg, renderer, inputMgr, lib)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	// Set up the window
	engine.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	engine.SetWindowTitle("Top-down shooter - click to aim")
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
