package hostio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrowave-systems/nescore/pkg/controller"
)

// keymap is the default pad 1 layout: arrows for the D-pad, Z/X for
// B/A, Enter/RShift for Start/Select.
var keymap = map[sdl.Keycode]controller.Button{
	sdl.K_UP:      controller.ButtonUp,
	sdl.K_DOWN:    controller.ButtonDown,
	sdl.K_LEFT:    controller.ButtonLeft,
	sdl.K_RIGHT:   controller.ButtonRight,
	sdl.K_z:       controller.ButtonB,
	sdl.K_x:       controller.ButtonA,
	sdl.K_RETURN:  controller.ButtonStart,
	sdl.K_RSHIFT:  controller.ButtonSelect,
}

// Input tracks pad 1's button state across PollEvents calls.
type Input struct {
	buttons [8]bool
	quit    bool
	paused  bool
}

// PollEvents drains the SDL event queue, updating button state and the
// quit/pause flags. Call once per host frame before reading Buttons.
func (in *Input) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.quit = true
		case *sdl.KeyboardEvent:
			pressed := e.Type == sdl.KEYDOWN
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				if pressed {
					in.quit = true
				}
				continue
			case sdl.K_p:
				if pressed {
					in.paused = !in.paused
				}
				continue
			}
			if btn, ok := keymap[e.Keysym.Sym]; ok {
				in.buttons[btn] = pressed
			}
		}
	}
}

// Buttons returns pad 1's current state, indexed by controller.Button.
func (in *Input) Buttons() [8]bool {
	return in.buttons
}

// Quit reports whether the user closed the window or pressed Escape.
func (in *Input) Quit() bool {
	return in.quit
}

// Paused reports whether playback is currently paused (toggled by P).
func (in *Input) Paused() bool {
	return in.paused
}
