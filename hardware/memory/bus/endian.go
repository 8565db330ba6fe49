// This file is part of Cube030.
//
// Cube030 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cube030 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cube030.  If not, see <https://www.gnu.org/licenses/>.

package bus

import "encoding/binary"

// Get returns the big-endian value of the specified size from memory. The
// offset is wrapped with mask, which must be one less than a power of two
// no greater than len(mem). An access that runs past the end of the masked
// region wraps to the start, in the same way that a mirrored region behaves
// on the real bus.
func Get(mem []byte, mask uint32, offset uint32, sz Size) uint32 {
	offset &= mask
	if offset+uint32(sz) <= mask+1 {
		switch sz {
		case Byte:
			return uint32(mem[offset])
		case Word:
			return uint32(binary.BigEndian.Uint16(mem[offset:]))
		default:
			return binary.BigEndian.Uint32(mem[offset:])
		}
	}

	var v uint32
	for i := range uint32(sz) {
		v = v<<8 | uint32(mem[(offset+i)&mask])
	}
	return v
}

// Put is the counterpart to Get.
func Put(mem []byte, mask uint32, offset uint32, sz Size, data uint32) {
	offset &= mask
	if offset+uint32(sz) <= mask+1 {
		switch sz {
		case Byte:
			mem[offset] = uint8(data)
		case Word:
			binary.BigEndian.PutUint16(mem[offset:], uint16(data))
		default:
			binary.BigEndian.PutUint32(mem[offset:], data)
		}
		return
	}

	for i := int(sz) - 1; i >= 0; i-- {
		mem[(offset+uint32(i))&mask] = uint8(data)
		data >>= 8
	}
}
