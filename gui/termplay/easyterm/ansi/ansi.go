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

// Package ansi defines the ANSI control codes used by the terminal front
// end.
package ansi

import "fmt"

// Screen and cursor control sequences.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	CursorHide  = "\033[?25l"
	CursorShow  = "\033[?25h"
)

// Pens for text styling. the terminal front end draws the display in the
// green-on-green of the original LCD panel as near as sixteen colours allow.
const (
	NormalPen = "\033[0m"
	BoldPen   = "\033[1m"
	DimPen    = "\033[2m"
	GreenPen  = "\033[32m"
)

// CursorMove returns the sequence to move the cursor to the given position.
// col and row are 1-based, as is the ANSI way.
func CursorMove(col int, row int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
