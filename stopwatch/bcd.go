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

// bcdIncrement adds one to a binary-coded-decimal byte, keeping both nibbles
// as valid decimal digits. The equivalent of a binary increment followed by
// the decimal-adjust instruction of the original CPU:
//
//	0x09 -> 0x10
//	0x59 -> 0x60
//	0x99 -> 0x00 (carry out of the byte is discarded)
func bcdIncrement(v uint8) uint8 {
	v++
	if v&0x0f > 0x09 {
		v += 0x06
	}
	if v&0xf0 > 0x90 {
		v += 0x60
	}
	return v
}

// the number of sub-units in one second for the BCD encoding.
const bcdTicksPerSecond = 128

// bcdSubUnitDigits maps every raw sub-unit value to the two ASCII digits of
// the corresponding number of hundredths. a table avoids the runtime
// division and guarantees the conversion is bounded to two digits. built
// with a variable initialiser rather than init() so that it is guaranteed
// to run after twoDigits has been populated.
var bcdSubUnitDigits = func() [bcdTicksPerSecond][2]byte {
	var tbl [bcdTicksPerSecond][2]byte
	for i := 0; i < bcdTicksPerSecond; i++ {
		tbl[i] = twoDigits[i*100/bcdTicksPerSecond]
	}
	return tbl
}()

// BCDEncoding counts 1/128ths of a second. The seconds and minutes fields
// are held in binary-coded-decimal form and advanced with bcdIncrement();
// the rollover comparison is against the BCD representation of sixty.
type BCDEncoding struct {
	minutes  uint8 // BCD
	seconds  uint8 // BCD
	subUnits int   // 0 to 127
}

// NewBCDEncoding is the preferred method of initialisation for the
// BCDEncoding type.
func NewBCDEncoding() *BCDEncoding {
	return &BCDEncoding{}
}

// Name implements the TimeEncoding interface.
func (enc *BCDEncoding) Name() string {
	return "bcd"
}

// TicksPerSecond implements the TimeEncoding interface.
func (enc *BCDEncoding) TicksPerSecond() int {
	return bcdTicksPerSecond
}

// Tick implements the TimeEncoding interface.
func (enc *BCDEncoding) Tick() bool {
	enc.subUnits++
	if enc.subUnits < bcdTicksPerSecond {
		return false
	}

	enc.subUnits = 0
	enc.seconds = bcdIncrement(enc.seconds)
	if enc.seconds >= 0x60 {
		enc.seconds = 0
		enc.minutes = bcdIncrement(enc.minutes)
		if enc.minutes >= 0x60 {
			enc.minutes = 0
		}
	}

	return true
}

// Reset implements the TimeEncoding interface.
func (enc *BCDEncoding) Reset() {
	enc.minutes = 0
	enc.seconds = 0
	enc.subUnits = 0
}

// Elapsed implements the TimeEncoding interface.
func (enc *BCDEncoding) Elapsed() (int, int, int) {
	m := int(enc.minutes>>4)*10 + int(enc.minutes&0x0f)
	s := int(enc.seconds>>4)*10 + int(enc.seconds&0x0f)
	return m, s, enc.subUnits
}

// MinutesDigits implements the TimeEncoding interface.
func (enc *BCDEncoding) MinutesDigits() [2]byte {
	return [2]byte{'0' + (enc.minutes >> 4), '0' + (enc.minutes & 0x0f)}
}

// SecondsDigits implements the TimeEncoding interface.
func (enc *BCDEncoding) SecondsDigits() [2]byte {
	return [2]byte{'0' + (enc.seconds >> 4), '0' + (enc.seconds & 0x0f)}
}

// SubUnitDigits implements the TimeEncoding interface.
func (enc *BCDEncoding) SubUnitDigits() [2]byte {
	return bcdSubUnitDigits[enc.subUnits]
}
