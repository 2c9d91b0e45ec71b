package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/topdown/internal/config"
	"chosenoffset.com/topdown/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "scene.yaml", "Scene config listing the textures")
	outDir := flag.String("out", "", "Output directory (defaults to the config's asset directory)")
	flag.Parse()

	fmt.Println("Top-down shooter placeholder graphics generator")
	fmt.Println("===============================================")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := cfg.Assets.Dir
	if *outDir != "" {
		dir = *outDir
	}

	if err := placeholders.GenerateAndSave(dir, cfg.Assets.Textures); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
}
