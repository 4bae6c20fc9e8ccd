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

package vdu_test

import (
	"testing"

	"github.com/seggers/gopherwatch/curated"
	"github.com/seggers/gopherwatch/hardware/vdu"
	"github.com/seggers/gopherwatch/test"
)

func TestCharTileRoundTrip(t *testing.T) {
	test.Equate(t, vdu.CharToTile(' '), vdu.BlankTile)
	test.Equate(t, vdu.CharToTile('0'), 16)
	test.Equate(t, vdu.TileToChar(vdu.CharToTile('A')), uint8('A'))

	// unprintable characters map to the blank tile
	test.Equate(t, vdu.CharToTile(0x07), vdu.BlankTile)
}

func TestWriteTileBounds(t *testing.T) {
	scr := vdu.NewVDU()

	test.ExpectedSuccess(t, scr.WriteTile(0, 0, vdu.CharToTile('x')))
	test.ExpectedSuccess(t, scr.WriteTile(vdu.Cols-1, vdu.Rows-1, vdu.CharToTile('x')))

	err := scr.WriteTile(vdu.Cols, 0, 0)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, vdu.OffScreen))
	test.ExpectedFailure(t, scr.WriteTile(0, vdu.Rows, 0))
	test.ExpectedFailure(t, scr.WriteTile(-1, 0, 0))
}

func TestPrint(t *testing.T) {
	scr := vdu.NewVDU()
	test.ExpectedSuccess(t, scr.Print(6, 6, "00:00:00"))

	test.Equate(t, vdu.TileToChar(scr.Tile(6, 6)), uint8('0'))
	test.Equate(t, vdu.TileToChar(scr.Tile(8, 6)), uint8(':'))
	test.Equate(t, vdu.TileToChar(scr.Tile(13, 6)), uint8('0'))

	// the cell after the string is untouched
	test.Equate(t, scr.Tile(14, 6), vdu.BlankTile)
}

func TestPrintClipping(t *testing.T) {
	scr := vdu.NewVDU()

	// printing off the right edge clips rather than wraps
	test.ExpectedSuccess(t, scr.Print(vdu.Cols-2, 0, "abcd"))
	test.Equate(t, vdu.TileToChar(scr.Tile(vdu.Cols-2, 0)), uint8('a'))
	test.Equate(t, vdu.TileToChar(scr.Tile(vdu.Cols-1, 0)), uint8('b'))
	test.Equate(t, scr.Tile(0, 1), vdu.BlankTile)
}

type gridRecorder struct {
	frames int
	last   vdu.Grid
}

func (rec *gridRecorder) NewFrame(grid vdu.Grid, frameNum int) error {
	rec.frames++
	rec.last = grid
	return nil
}

func TestNewFrame(t *testing.T) {
	scr := vdu.NewVDU()
	scr.SetFPSCap(false)

	rec := &gridRecorder{}
	scr.AddTileRenderer(rec)

	scr.Print(1, 1, "GOPHERWATCH :")
	test.ExpectedSuccess(t, scr.NewFrame())
	test.ExpectedSuccess(t, scr.NewFrame())

	test.Equate(t, rec.frames, 2)
	test.Equate(t, vdu.TileToChar(rec.last[1][1]), uint8('G'))
}
