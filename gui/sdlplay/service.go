// This file is part of Gopherwatch.
//
// Gopherwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherwatch.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"github.com/seggers/gopherwatch/gui"
	"github.com/seggers/gopherwatch/hardware/joypad"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. they take
	// time to service and there is nothing in this GUI a mouse can do
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// keys that map to the two buttons of the handheld. key state translates
// directly to the held state of the joypad so press-and-hold behaves the way
// the real buttons do.
func (spl *SdlPlay) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	down := ev.Type == sdl.KEYDOWN

	switch ev.Keysym.Sym {
	case sdl.K_SPACE, sdl.K_RETURN:
		spl.pad.Set(joypad.A, down)
	case sdl.K_b, sdl.K_BACKSPACE:
		spl.pad.Set(joypad.B, down)
	case sdl.K_ESCAPE:
		if down {
			spl.events <- gui.EventQuit{}
		}
	}
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (spl *SdlPlay) Service() {
	// loop until there are no more events to retrieve, timing out straight
	// away if there is nothing
	empty := false
	for !empty {
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			spl.events <- gui.EventQuit{}

		case *sdl.KeyboardEvent:
			spl.serviceKeyboard(ev)

		case nil:
			// WaitEventTimeout has timed out and the event queue is empty
			empty = true
		}
	}

	// run any outstanding service functions
	select {
	case f := <-spl.service:
		f()
	default:
	}

	spl.redraw()
}
