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

package stopwatch

import (
	"github.com/seggers/gopherwatch/curated"
)

// TimeEncoding is the numeric representation of the time-of-record. Two
// encodings exist: a plain binary counter counting hundredths, and a
// BCD-packed counter counting 1/128ths. Both satisfy the same contract: one
// Tick() advances the time by exactly one sub-unit, all carries are resolved
// before Tick() returns, and the return value is true on exactly those ticks
// where the seconds field advanced.
type TimeEncoding interface {
	Name() string

	// the number of sub-units in one second
	TicksPerSecond() int

	// advance the time by one sub-unit. returns true on second rollover
	Tick() bool

	// return the time to zero
	Reset()

	// the elapsed time in plain binary form
	Elapsed() (minutes int, seconds int, subUnits int)

	// each field as exactly two ASCII digits, most significant first
	MinutesDigits() [2]byte
	SecondsDigits() [2]byte
	SubUnitDigits() [2]byte
}

// sentinal errors for encoding selection.
const (
	UnknownEncoding = "stopwatch: unknown encoding: %s"
)

// NewEncoding returns the TimeEncoding with the given name. The empty string
// selects the binary encoding.
func NewEncoding(name string) (TimeEncoding, error) {
	switch name {
	case "", "binary":
		return NewBinaryEncoding(), nil
	case "bcd":
		return NewBCDEncoding(), nil
	}
	return nil, curated.Errorf(UnknownEncoding, name)
}

// twoDigits is the two ASCII digits for every value a binary field can hold.
// a table lookup rather than repeated division keeps the conversion bounded
// to two digits whatever the timing of the redraw.
var twoDigits = func() [100][2]byte {
	var tbl [100][2]byte
	for i := 0; i < 100; i++ {
		tbl[i] = [2]byte{'0' + byte(i/10), '0' + byte(i%10)}
	}
	return tbl
}()

// BinaryEncoding counts hundredths of a second in plain binary fields.
type BinaryEncoding struct {
	minutes    int
	seconds    int
	hundredths int
}

// NewBinaryEncoding is the preferred method of initialisation for the
// BinaryEncoding type.
func NewBinaryEncoding() *BinaryEncoding {
	return &BinaryEncoding{}
}

// Name implements the TimeEncoding interface.
func (enc *BinaryEncoding) Name() string {
	return "binary"
}

// TicksPerSecond implements the TimeEncoding interface.
func (enc *BinaryEncoding) TicksPerSecond() int {
	return 100
}

// Tick implements the TimeEncoding interface.
func (enc *BinaryEncoding) Tick() bool {
	enc.hundredths++
	if enc.hundredths < 100 {
		return false
	}

	enc.hundredths = 0
	enc.seconds++
	if enc.seconds >= 60 {
		enc.seconds = 0
		enc.minutes++
		if enc.minutes >= 60 {
			// minutes wrap silently. there is no hour field
			enc.minutes = 0
		}
	}

	return true
}

// Reset implements the TimeEncoding interface.
func (enc *BinaryEncoding) Reset() {
	enc.minutes = 0
	enc.seconds = 0
	enc.hundredths = 0
}

// Elapsed implements the TimeEncoding interface.
func (enc *BinaryEncoding) Elapsed() (int, int, int) {
	return enc.minutes, enc.seconds, enc.hundredths
}

// MinutesDigits implements the TimeEncoding interface.
func (enc *BinaryEncoding) MinutesDigits() [2]byte {
	return twoDigits[enc.minutes]
}

// SecondsDigits implements the TimeEncoding interface.
func (enc *BinaryEncoding) SecondsDigits() [2]byte {
	return twoDigits[enc.seconds]
}

// SubUnitDigits implements the TimeEncoding interface.
func (enc *BinaryEncoding) SubUnitDigits() [2]byte {
	return twoDigits[enc.hundredths]
}
