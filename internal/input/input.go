// Package input turns polled keyboard and mouse state into a queue of
// discrete events, read once per tick.
package input

import (
	"fmt"

	"chosenoffset.com/topdown/internal/render"
)

// Kind identifies an input event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	MouseDown
	PointerMove
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case MouseDown:
		return "mousedown"
	case PointerMove:
		return "pointermove"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one input occurrence. Key is set for key events, DX/DY for
// pointer moves.
type Event struct {
	Kind   Kind
	Key    render.Key
	DX, DY float64
}

// Poller watches a fixed set of keys plus the left mouse button and the
// captured pointer.
type Poller struct {
	input render.InputManager
	keys  []render.Key
	down  map[render.Key]bool // Keys reported down and not yet up

	primed       bool
	lastX, lastY int

	events []Event
}

// NewPoller creates a poller for the given keys. Duplicate keys are
// watched once.
func NewPoller(in render.InputManager, keys ...render.Key) *Poller {
	p := &Poller{input: in, down: make(map[render.Key]bool)}
	seen := make(map[render.Key]bool)
	for _, k := range keys {
		if k == render.KeyUnknown || seen[k] {
			continue
		}
		seen[k] = true
		p.keys = append(p.keys, k)
	}
	return p
}

// Keys returns the watched keys in the order events are reported.
func (p *Poller) Keys() []render.Key {
	return p.keys
}

// Poll reads the input state for this tick. Events come out in a fixed
// order: key-downs, key-ups, mouse-down, then pointer movement. A key
// reported down that is no longer pressed gets a key-up even if the
// release itself was missed, as happens when the window loses focus. The
// returned slice is reused by the next call.
func (p *Poller) Poll() []Event {
	p.events = p.events[:0]

	for _, k := range p.keys {
		if p.input.IsKeyJustPressed(k) {
			p.down[k] = true
			p.events = append(p.events, Event{Kind: KeyDown, Key: k})
		}
	}
	for _, k := range p.keys {
		if p.input.IsKeyJustReleased(k) || (p.down[k] && !p.input.IsKeyPressed(k)) {
			p.down[k] = false
			p.events = append(p.events, Event{Kind: KeyUp, Key: k})
		}
	}

	if p.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		p.events = append(p.events, Event{Kind: MouseDown})
	}

	if !p.input.IsCursorCaptured() {
		p.primed = false
		return p.events
	}

	x, y := p.input.GetCursorPosition()
	if !p.primed {
		// First captured tick: the cursor may have jumped when the lock engaged.
		p.primed = true
		p.lastX, p.lastY = x, y
		return p.events
	}

	dx, dy := x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	if dx != 0 || dy != 0 {
		p.events = append(p.events, Event{Kind: PointerMove, DX: float64(dx), DY: float64(dy)})
	}

	return p.events
}
