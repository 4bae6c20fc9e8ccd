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

package vdu

// Width and height of the background tile grid in tiles.
const (
	Cols = 20
	Rows = 18
)

// Grid is a snapshot of the background tile map. Each cell is a tile index.
type Grid [Rows][Cols]byte

// The tile with index zero is always blank. Writing it to a cell erases the
// cell.
const BlankTile = 0

// glyphBase is the character mapped to tile zero. Tiles follow in ASCII
// order, so the tile for any printable character is the character minus
// glyphBase.
const glyphBase = ' '

// CharToTile converts a printable ASCII character to its tile index.
// Characters outside the printable range convert to the blank tile.
func CharToTile(c byte) byte {
	if c < glyphBase || c > '~' {
		return BlankTile
	}
	return c - glyphBase
}

// TileToChar converts a tile index back to the ASCII character it displays.
func TileToChar(tile byte) byte {
	c := tile + glyphBase
	if c > '~' {
		return glyphBase
	}
	return c
}

// TileRenderer implementations display, or otherwise work with, the tile
// grid of the VDU. Implementations often find it convenient to maintain a
// reference to the parent VDU.
type TileRenderer interface {
	// NewFrame is called once per frame with a snapshot of the tile grid.
	// The snapshot is a copy and can be retained.
	NewFrame(grid Grid, frameNum int) error
}
