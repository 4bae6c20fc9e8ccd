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

// Package hardware is the container package for the emulated components of
// the handheld: the interrupt timer, the pulse channel of the APU, the
// joypad and the tile display. The DMG type gathers the chips together and
// the Run() function drives them a frame at a time.
//
// The stopwatch firmware itself lives in the stopwatch package. The hardware
// package creates it during Reset() and services it once per frame from
// Run().
package hardware
