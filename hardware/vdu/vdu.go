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

// Package vdu implements the character display of the stopwatch device, a
// fixed grid of tile indices. The firmware writes individual cells; once per
// frame the grid is pushed to every registered TileRenderer and the frame
// limiter paces the emulation to the display refresh rate.
package vdu

import (
	"github.com/seggers/gopherwatch/curated"
)

// sentinal errors returned by VDU functions.
const (
	OffScreen = "vdu: tile position (%d, %d) is off screen"
)

// VDU is the display of the stopwatch device.
type VDU struct {
	grid Grid

	renderers []TileRenderer

	frameNum int

	lmtr limiter
}

// NewVDU is the preferred method of initialisation for the VDU type.
func NewVDU() *VDU {
	scr := &VDU{}
	scr.lmtr.init()
	return scr
}

// AddTileRenderer registers a TileRenderer implementation with the VDU.
func (scr *VDU) AddTileRenderer(r TileRenderer) {
	scr.renderers = append(scr.renderers, r)
}

// SetFPSCap turns frame pacing on or off. With the cap off the emulation
// runs as fast as the host allows. Useful for testing.
func (scr *VDU) SetFPSCap(limit bool) {
	scr.lmtr.setActive(limit)
}

// GetActualFPS returns the measured frame rate of the emulation.
func (scr *VDU) GetActualFPS() float32 {
	return scr.lmtr.actual()
}

// WriteTile writes a single tile index to the given cell.
func (scr *VDU) WriteTile(x int, y int, tile byte) error {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return curated.Errorf(OffScreen, x, y)
	}
	scr.grid[y][x] = tile
	return nil
}

// Print the string to the grid starting at the given cell, converting each
// character to its tile. Printing off the right-hand edge of the grid is
// clipped, not wrapped.
func (scr *VDU) Print(x int, y int, s string) error {
	if y < 0 || y >= Rows || x < 0 {
		return curated.Errorf(OffScreen, x, y)
	}
	for i := 0; i < len(s) && x+i < Cols; i++ {
		scr.grid[y][x+i] = CharToTile(s[i])
	}
	return nil
}

// Clear every cell of the grid.
func (scr *VDU) Clear() {
	scr.grid = Grid{}
}

// Tile returns the tile index at the given cell. Off-screen cells read as
// the blank tile.
func (scr *VDU) Tile(x int, y int) byte {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return BlankTile
	}
	return scr.grid[y][x]
}

// NewFrame ends the current frame: the grid is pushed to every registered
// renderer and the frame limiter waits until the next frame is due. This is
// the vsync point of the emulation.
func (scr *VDU) NewFrame() error {
	scr.frameNum++

	for _, r := range scr.renderers {
		if err := r.NewFrame(scr.grid, scr.frameNum); err != nil {
			return curated.Errorf("vdu: %v", err)
		}
	}

	scr.lmtr.checkFrame()

	return nil
}
