// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bezierview/internal/controls"
)

// EventType classifies a processed SDL event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Bindings maps physical keys to viewer actions. Several keys may share an action.
type Bindings map[sdl.Scancode]controls.Action

// DefaultBindings returns the standard key layout.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_UP:     controls.PitchUp,
		sdl.SCANCODE_I:      controls.PitchUp,
		sdl.SCANCODE_DOWN:   controls.PitchDown,
		sdl.SCANCODE_K:      controls.PitchDown,
		sdl.SCANCODE_LEFT:   controls.YawLeft,
		sdl.SCANCODE_J:      controls.YawLeft,
		sdl.SCANCODE_RIGHT:  controls.YawRight,
		sdl.SCANCODE_L:      controls.YawRight,
		sdl.SCANCODE_U:      controls.RollLeft,
		sdl.SCANCODE_O:      controls.RollRight,
		sdl.SCANCODE_W:      controls.MoveForward,
		sdl.SCANCODE_S:      controls.MoveBack,
		sdl.SCANCODE_A:      controls.MoveLeft,
		sdl.SCANCODE_D:      controls.MoveRight,
		sdl.SCANCODE_F:      controls.ToggleWireframe,
		sdl.SCANCODE_F12:    controls.Screenshot,
		sdl.SCANCODE_ESCAPE: controls.Quit,
	}
}

// Input polls SDL events once per frame and reduces them to a controls.Frame.
type Input struct {
	bindings Bindings
	events   []Event
	pressed  controls.Action
	mouseDX  float32
	mouseDY  float32
}

// New creates a new input handler.
func New(bindings Bindings) *Input {
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.pressed = 0
	i.mouseDX, i.mouseDY = 0, 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Held keys come from the keyboard state in Frame. Toggles
			// fire once per physical press, not on auto-repeat.
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.pressed |= i.bindings[e.Keysym.Scancode]
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Frame returns the held and pressed actions plus mouse motion since the last Update.
func (i *Input) Frame(dt float32) controls.Frame {
	state := sdl.GetKeyboardState()

	var held controls.Action
	for sc, action := range i.bindings {
		if int(sc) < len(state) && state[sc] != 0 {
			held |= action
		}
	}

	return controls.Frame{
		DT:      dt,
		Held:    held,
		Pressed: i.pressed,
		MouseDX: i.mouseDX,
		// SDL y grows downward; look up is positive pitch
		MouseDY: -i.mouseDY,
	}
}
