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

// each glyph is an 8x8 one-bit-per-pixel bitmap, most significant bit
// leftmost. only the characters the firmware actually draws have glyphs;
// anything else renders as a blank tile.
var glyphs = map[byte][8]byte{
	' ': {},

	'-': {0x00, 0x00, 0x00, 0x7c, 0x00, 0x00, 0x00, 0x00},
	':': {0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00, 0x00},

	'0': {0x3c, 0x66, 0x6e, 0x76, 0x66, 0x66, 0x3c, 0x00},
	'1': {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7e, 0x00},
	'2': {0x3c, 0x66, 0x06, 0x0c, 0x30, 0x60, 0x7e, 0x00},
	'3': {0x3c, 0x66, 0x06, 0x1c, 0x06, 0x66, 0x3c, 0x00},
	'4': {0x06, 0x0e, 0x1e, 0x66, 0x7f, 0x06, 0x06, 0x00},
	'5': {0x7e, 0x60, 0x7c, 0x06, 0x06, 0x66, 0x3c, 0x00},
	'6': {0x3c, 0x66, 0x60, 0x7c, 0x66, 0x66, 0x3c, 0x00},
	'7': {0x7e, 0x66, 0x0c, 0x18, 0x18, 0x18, 0x18, 0x00},
	'8': {0x3c, 0x66, 0x66, 0x3c, 0x66, 0x66, 0x3c, 0x00},
	'9': {0x3c, 0x66, 0x66, 0x3e, 0x06, 0x66, 0x3c, 0x00},

	'A': {0x18, 0x3c, 0x66, 0x7e, 0x66, 0x66, 0x66, 0x00},
	'B': {0x7c, 0x66, 0x66, 0x7c, 0x66, 0x66, 0x7c, 0x00},
	'C': {0x3c, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3c, 0x00},
	'E': {0x7e, 0x60, 0x60, 0x78, 0x60, 0x60, 0x7e, 0x00},
	'G': {0x3c, 0x66, 0x60, 0x6e, 0x66, 0x66, 0x3c, 0x00},
	'H': {0x66, 0x66, 0x66, 0x7e, 0x66, 0x66, 0x66, 0x00},
	'O': {0x3c, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'P': {0x7c, 0x66, 0x66, 0x7c, 0x60, 0x60, 0x60, 0x00},
	'R': {0x7c, 0x66, 0x66, 0x7c, 0x78, 0x6c, 0x66, 0x00},
	'S': {0x3c, 0x66, 0x60, 0x3c, 0x06, 0x66, 0x3c, 0x00},
	'T': {0x7e, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'W': {0x63, 0x63, 0x63, 0x6b, 0x7f, 0x77, 0x63, 0x00},

	'a': {0x00, 0x00, 0x3c, 0x06, 0x3e, 0x66, 0x3e, 0x00},
	'e': {0x00, 0x00, 0x3c, 0x66, 0x7e, 0x60, 0x3c, 0x00},
	'o': {0x00, 0x00, 0x3c, 0x66, 0x66, 0x66, 0x3c, 0x00},
	'p': {0x00, 0x00, 0x7c, 0x66, 0x66, 0x7c, 0x60, 0x60},
	'r': {0x00, 0x00, 0x6c, 0x76, 0x60, 0x60, 0x60, 0x00},
	's': {0x00, 0x00, 0x3e, 0x60, 0x3c, 0x06, 0x7c, 0x00},
	't': {0x00, 0x18, 0x7e, 0x18, 0x18, 0x18, 0x0e, 0x00},
}
