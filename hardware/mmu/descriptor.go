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

package mmu

import (
	"github.com/jetsetilly/cube030/hardware/memory/bus"
)

// Bit layout of the first long word of a descriptor. Short descriptors are
// a single long word. Long descriptors are two long words, the second of
// which holds the address field.
const (
	descSupervisor   = 0x00000100
	descCacheInhibit = 0x00000040
	descModified     = 0x00000010
	descUsed         = 0x00000008
	descWriteProtect = 0x00000004
	descPageAddress  = 0xffffff00
	descIndirect     = 0xfffffffc
)

type descriptor struct {
	// physical address of the descriptor
	address uint32
	long    bool

	// the first long word. the only long word of a short descriptor
	status uint32

	// the second long word of a long descriptor
	value uint32

	// the descriptor is an indirect descriptor
	indirect bool

	// status has been changed and needs to be written back
	dirty bool
}

func (d descriptor) dt() uint8 {
	return uint8(d.status & dtMask)
}

func (d descriptor) addressField() uint32 {
	if d.long {
		return d.value
	}
	return d.status
}

func (d descriptor) tableAddress() uint32 {
	return d.addressField() & addrMask
}

func (d descriptor) pageAddress() uint32 {
	return d.addressField() & descPageAddress
}

func (d descriptor) indirectAddress() uint32 {
	return d.addressField() & descIndirect
}

func (d descriptor) is(flag uint32) bool {
	return d.status&flag == flag
}

// supervisor only. long descriptors only
func (d descriptor) supervisor() bool {
	return d.long && d.is(descSupervisor)
}

// limit of the next table. the ok value is false for short descriptors,
// which do not have a limit
func (d descriptor) limit() (lower bool, limit uint16, ok bool) {
	if !d.long {
		return false, 0, false
	}
	return d.status&limitLower == limitLower, uint16(d.status>>limitShift) & limitMask, true
}

func (d *descriptor) set(flag uint32) {
	if d.status&flag != flag {
		d.status |= flag
		d.dirty = true
	}
}

// fetch the descriptor from physical memory.
func fetch(mem bus.Reader, address uint32, long bool) (descriptor, error) {
	d := descriptor{
		address: address,
		long:    long,
	}

	var err error
	d.status, err = mem.Read(bus.Long, address)
	if err != nil {
		return d, err
	}
	if long {
		d.value, err = mem.Read(bus.Long, address+4)
		if err != nil {
			return d, err
		}
	}
	return d, nil
}

// write back the status long word if it has been changed.
func (d *descriptor) writeback(mem bus.Writer) error {
	if !d.dirty {
		return nil
	}
	d.dirty = false
	return mem.Write(bus.Long, d.address, d.status)
}

// the size in bytes of the entries of a table with the descriptor type
func entrySize(dt uint8) uint32 {
	if dt == DTValid8 {
		return 8
	}
	return 4
}
