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

// Package cpuid is the boot-time capability probe. The model of the emulated
// machine is read once at power-on and is immutable thereafter. The firmware
// uses the result to decide the CPU speed and from that the timer
// configuration.
package cpuid

import (
	"github.com/seggers/gopherwatch/curated"
)

// Model is the hardware identity of the emulated machine.
type Model int

// List of valid Model values.
const (
	DMG Model = iota
	CGB
)

func (m Model) String() string {
	switch m {
	case DMG:
		return "DMG"
	case CGB:
		return "CGB"
	}
	panic("unknown cpu model")
}

// SpeedMode is the clock speed the CPU runs at. The firmware switches a CGB
// to double-speed at boot and never switches back.
type SpeedMode int

// List of valid SpeedMode values.
const (
	NormalSpeed SpeedMode = iota
	DoubleSpeed
)

func (s SpeedMode) String() string {
	switch s {
	case NormalSpeed:
		return "normal"
	case DoubleSpeed:
		return "double"
	}
	panic("unknown speed mode")
}

// Factor is the speed multiplier relative to normal speed.
func (s SpeedMode) Factor() int {
	if s == DoubleSpeed {
		return 2
	}
	return 1
}

// Speed returns the speed mode the firmware selects for the model at boot.
func (m Model) Speed() SpeedMode {
	if m == CGB {
		return DoubleSpeed
	}
	return NormalSpeed
}

// sentinal errors returned by the Probe() function.
const (
	UnknownModel = "cpuid: unknown model: %s"
)

// Probe the identity of the emulated machine. The request argument allows the
// emulated model to be selected; the empty string and "auto" select the
// default model.
func Probe(request string) (Model, error) {
	switch request {
	case "", "auto", "dmg":
		return DMG, nil
	case "cgb":
		return CGB, nil
	}
	return DMG, curated.Errorf(UnknownModel, request)
}
