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

// Package joypad implements the two buttons of the stopwatch device as a
// polled bitmask. Front ends set button state from their own goroutine; the
// emulation strobes the current mask once per frame. Only rising edges are
// actionable and the Edges() function computes them.
package joypad

import (
	"sync"
)

// Button is the bitmask of the recognised buttons.
type Button uint8

// The two buttons of the device. A confirms (start/stop), B cancels (reset).
const (
	A Button = 0b01
	B Button = 0b10
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	}
	return "none"
}

// Joypad is the button input register of the device.
type Joypad struct {
	crit sync.Mutex

	// buttons currently held down
	held Button

	// buttons pressed momentarily since the last strobe. used by front ends
	// that have no concept of a key-up event (eg. a terminal)
	momentary Button
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// Set the held state of a button. Safe to call from any goroutine.
func (pad *Joypad) Set(b Button, pressed bool) {
	pad.crit.Lock()
	defer pad.crit.Unlock()

	if pressed {
		pad.held |= b
	} else {
		pad.held &^= b
	}
}

// Press a button momentarily. The button reads as pressed for exactly one
// strobe and released thereafter. Safe to call from any goroutine.
func (pad *Joypad) Press(b Button) {
	pad.crit.Lock()
	defer pad.crit.Unlock()

	pad.momentary |= b
}

// Strobe returns the current button mask. Called by the emulation once per
// frame.
func (pad *Joypad) Strobe() Button {
	pad.crit.Lock()
	defer pad.crit.Unlock()

	mask := pad.held | pad.momentary
	pad.momentary = 0
	return mask
}

// Edges returns the buttons that are pressed now but were not pressed in the
// previous strobe.
func Edges(prev, curr Button) Button {
	return curr &^ prev
}
