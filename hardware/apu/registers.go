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

package apu

// Register identifies one of the tone generator registers.
type Register int

// The five channel registers plus the two master registers. The names follow
// the hardware naming for the first pulse channel.
const (
	NR10 Register = iota // frequency sweep
	NR11                 // duty and length load
	NR12                 // volume envelope
	NR13                 // frequency lsb
	NR14                 // trigger, length enable, frequency msb
	NR50                 // master volume
	NR52                 // master enable
)

func (reg Register) String() string {
	switch reg {
	case NR10:
		return "NR10"
	case NR11:
		return "NR11"
	case NR12:
		return "NR12"
	case NR13:
		return "NR13"
	case NR14:
		return "NR14"
	case NR50:
		return "NR50"
	case NR52:
		return "NR52"
	}
	panic("unknown apu register")
}

// WriteRegister updates the named register and applies any side effects the
// write has on the channel. Writing NR14 with the high bit set triggers the
// channel.
func (au *APU) WriteRegister(reg Register, value uint8) {
	switch reg {
	case NR10:
		au.Registers[NR10] = value
		au.channel.sweepPeriod = int((value >> 4) & 0x07)
		au.channel.sweepNegate = value&0x08 == 0x08
		au.channel.sweepShift = uint(value & 0x07)
	case NR11:
		au.Registers[NR11] = value
		au.channel.duty = int(value >> 6)
		au.channel.lengthLoad = int(value & 0x3f)
	case NR12:
		au.Registers[NR12] = value
		au.channel.envStart = value >> 4
		au.channel.envUp = value&0x08 == 0x08
		au.channel.envPeriod = int(value & 0x07)
	case NR13:
		au.Registers[NR13] = value
		au.channel.freq = (au.channel.freq & 0x0700) | uint16(value)
	case NR14:
		au.Registers[NR14] = value
		au.channel.freq = (au.channel.freq & 0x00ff) | (uint16(value&0x07) << 8)
		au.channel.lengthOn = value&0x40 == 0x40
		if value&0x80 == 0x80 {
			au.channel.trigger()
		}
	case NR50:
		au.MasterVolume = value
	case NR52:
		au.Enabled = value&0x80 == 0x80
		if !au.Enabled {
			au.channel.enabled = false
		}
	}
}
