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

// Package clocks defines the constant values that define the speed of the
// main clock in the DMG handheld, and the timer register values derived from
// them.
//
// The timer modulo values are chosen so that the timer interrupt fires at the
// same wall-clock rate whatever the CPU speed:
//
//	normal speed: 4194304Hz / 256 = 16384Hz TIMA rate
//	              256-0x5c = 164 increments per overflow
//	              16384 / 164 = 99.9Hz interrupt rate
//
//	double speed: 8388608Hz / 1024 = 8192Hz TIMA rate
//	              256-0xae = 82 increments per overflow
//	              8192 / 82 = 99.9Hz interrupt rate
package clocks

// Clock speeds in Hz.
const (
	Normal = 4194304
	Double = 8388608
)

// CyclesPerFrame is the number of clock cycles in one frame of the display at
// normal speed. The value doubles in double-speed mode because the display
// refresh rate does not change with the CPU speed.
const CyclesPerFrame = 70224

// FramesPerSecond is the refresh rate of the display.
const FramesPerSecond = 59.73

// Timer modulo values for a real-time interrupt rate. One for each CPU speed.
const (
	ModuloRealtimeNormal = 0x5c
	ModuloRealtimeDouble = 0xae
)
