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

package memorymap

// The size of a slot and the number of slots in the physical address space.
const (
	SlotShift = 16
	SlotSize  = 1 << SlotShift
	NumSlots  = 1 << (32 - SlotShift)
)

// ROM is 128KiB and appears at the top of the boot alias and at its own
// origin.
const (
	OriginBootROM = 0x00000000
	OriginROM     = 0x01000000
	SizeROM       = 0x00020000
)

// The low part of the boot alias can be overlaid with RAM. Reads of
// addresses below OverlayTop are redirected to OverlayTarget+address while
// the boot overlay is active.
const (
	OverlayTop    = 0x00002000
	OverlayTarget = 0x07ffe000
)

// The I/O window and its mirror.
const (
	OriginIO = 0x02000000
	MirrorIO = 0x02100000
	SizeIO   = 0x00020000
)

// RAM is divided into banks. Each bank occupies a fixed span of the address
// space regardless of how much memory is fitted. The unpopulated part of
// the span is served by an Empty bank.
const (
	OriginRAM   = 0x04000000
	RAMBanks    = 4
	RAMBankSpan = 0x01000000
)

// Framebuffers.
const (
	OriginMonoVRAM  = 0x0b000000
	SizeMonoVRAM    = 0x00040000
	OriginColorVRAM = 0x2c000000
	SizeColorVRAM   = 0x00200000
)

// Slot returns the slot number for an address.
func Slot(address uint32) int {
	return int(address >> SlotShift)
}

// Slots returns the number of slots needed to cover size bytes. Sizes that
// are not a multiple of SlotSize are rounded up.
func Slots(size uint32) int {
	return int((uint64(size) + SlotSize - 1) >> SlotShift)
}

// OriginRAMBank returns the origin of the RAM bank.
func OriginRAMBank(bank int) uint32 {
	return OriginRAM + uint32(bank)*RAMBankSpan
}
