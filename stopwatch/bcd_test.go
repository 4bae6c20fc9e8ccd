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
	"testing"

	"github.com/seggers/gopherwatch/test"
)

func TestBCDIncrement(t *testing.T) {
	for _, c := range []struct {
		v, want uint8
	}{
		{0x00, 0x01},
		{0x08, 0x09},
		{0x09, 0x10},
		{0x19, 0x20},
		{0x29, 0x30},
		{0x59, 0x60},
		{0x89, 0x90},
		{0x98, 0x99},
		{0x99, 0x00},
	} {
		test.Equate(t, bcdIncrement(c.v), c.want)
	}
}

func TestBCDIncrementClosure(t *testing.T) {
	// starting from zero and applying nothing but bcdIncrement, both
	// nibbles stay decimal and the sequence visits all one hundred values
	// before repeating
	v := uint8(0x00)
	for i := 0; i < 100; i++ {
		if v&0x0f > 0x09 || v&0xf0 > 0x90 {
			t.Fatalf("non-decimal nibble at step %d: %#02x", i, v)
		}
		test.Equate(t, v, (i/10)<<4|i%10)
		v = bcdIncrement(v)
	}
	test.Equate(t, v, 0x00)
}

func TestBCDSecondsRollover(t *testing.T) {
	enc := NewBCDEncoding()

	for i := 0; i < bcdTicksPerSecond-1; i++ {
		test.Equate(t, enc.Tick(), false)
	}
	test.Equate(t, enc.Tick(), true)

	m, s, u := enc.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 1)
	test.Equate(t, u, 0)

	// the comparison against the BCD representation of sixty: one tick past
	// 59 seconds carries into the minutes field
	for i := 0; i < 58*bcdTicksPerSecond; i++ {
		enc.Tick()
	}
	m, s, _ = enc.Elapsed()
	test.Equate(t, m, 0)
	test.Equate(t, s, 59)
	test.Equate(t, string(enc.SecondsDigits()[0]), "5")

	for i := 0; i < bcdTicksPerSecond; i++ {
		enc.Tick()
	}
	m, s, _ = enc.Elapsed()
	test.Equate(t, m, 1)
	test.Equate(t, s, 0)
}

func TestBCDSubUnitTable(t *testing.T) {
	// the raw count of 1/128ths is displayed as hundredths. the table is
	// monotonic, bounded to two decimal digits and reaches 99 only on the
	// final entry
	prev := -1
	for i := 0; i < bcdTicksPerSecond; i++ {
		d := bcdSubUnitDigits[i]
		if d[0] < '0' || d[0] > '9' || d[1] < '0' || d[1] > '9' {
			t.Fatalf("non-digit at entry %d: %q", i, d)
		}
		v := int(d[0]-'0')*10 + int(d[1]-'0')
		if v < prev {
			t.Fatalf("table not monotonic at entry %d", i)
		}
		prev = v
	}
	test.Equate(t, string(bcdSubUnitDigits[0][:]), "00")
	test.Equate(t, string(bcdSubUnitDigits[32][:]), "25")
	test.Equate(t, string(bcdSubUnitDigits[64][:]), "50")
	test.Equate(t, string(bcdSubUnitDigits[bcdTicksPerSecond-1][:]), "99")
}

func TestBCDMatchesBinary(t *testing.T) {
	// despite the different sub-unit rate and field representation, both
	// encodings agree on minutes and seconds at every whole second
	bin := NewBinaryEncoding()
	bcd := NewBCDEncoding()

	for sec := 1; sec <= 150; sec++ {
		for i := 0; i < 100; i++ {
			bin.Tick()
		}
		for i := 0; i < bcdTicksPerSecond; i++ {
			bcd.Tick()
		}

		bm, bs, _ := bin.Elapsed()
		cm, cs, _ := bcd.Elapsed()
		test.Equate(t, cm, bm)
		test.Equate(t, cs, bs)
	}
}
