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

package banks

import (
	"encoding/hex"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/logger"
)

// ROM is the boot ROM. It is read-only. Writes are logged and ignored so
// that a guest probing for RAM at the ROM address does not fault.
//
// The ROM is mapped at both the boot alias and its own origin. While the
// boot overlay is active, reads from the first OverlayTop bytes of the boot
// alias are served from RAM instead.
type ROM struct {
	data []byte
	mask uint32

	// returns true if the boot overlay is active. may be nil
	overlay func() bool

	// the target of reads redirected by the boot overlay
	redirect bus.Reader

	// the address in redirect that the overlay starts at. if nil
	// memorymap.OverlayTarget is used
	target func() uint32
}

// NewROM is the preferred method of initialisation for the ROM type.
func NewROM() *ROM {
	return &ROM{
		data: make([]byte, memorymap.SizeROM),
		mask: memorymap.SizeROM - 1,
	}
}

// Sentinel error returned by ROM.Load().
const (
	ROMTooLarge = "rom: image is too large (%d bytes)"
	ROMEmpty    = "rom: image is empty"
)

// Load ROM image. Images smaller than the ROM are repeated to fill it.
func (rom *ROM) Load(image []byte) error {
	if len(image) == 0 {
		return curated.Errorf(ROMEmpty)
	}
	if len(image) > len(rom.data) {
		return curated.Errorf(ROMTooLarge, len(image))
	}
	for i := 0; i < len(rom.data); i += len(image) {
		copy(rom.data[i:], image)
	}
	return nil
}

// SetOverlay attaches the boot overlay. The active and target functions are
// consulted on every read of the boot alias.
func (rom *ROM) SetOverlay(active func() bool, redirect bus.Reader, target func() uint32) {
	rom.overlay = active
	rom.redirect = redirect
	rom.target = target
}

func (rom *ROM) String() string {
	return hex.Dump(rom.data)
}

// Data returns the ROM storage. The returned slice is not a copy.
func (rom *ROM) Data() []byte {
	return rom.data
}

// Label implements the bus.Bank interface.
func (rom *ROM) Label() string {
	return "ROM"
}

func (rom *ROM) overlaid(address uint32) bool {
	return address < memorymap.OverlayTop && rom.overlay != nil && rom.redirect != nil && rom.overlay()
}

// Read implements the bus.Bank interface.
func (rom *ROM) Read(sz bus.Size, address uint32) (uint32, error) {
	if rom.overlaid(address) {
		if rom.target == nil {
			return rom.redirect.Read(sz, memorymap.OverlayTarget+address)
		}
		return rom.redirect.Read(sz, rom.target()+address)
	}
	return bus.Get(rom.data, rom.mask, address, sz), nil
}

// Write implements the bus.Bank interface.
func (rom *ROM) Write(sz bus.Size, address uint32, data uint32) error {
	logger.Logf(logger.Allow, "rom", "ignored %s write of $%x at $%08x", sz, data, address)
	return nil
}

// Translate implements the bus.Bank interface.
func (rom *ROM) Translate(address uint32) ([]byte, error) {
	return rom.data[address&rom.mask:], nil
}

// Check implements the bus.Bank interface.
func (rom *ROM) Check(address uint32, size uint32) bool {
	return uint64(address&rom.mask)+uint64(size) <= uint64(len(rom.data))
}

// Peek implements the bus.DebugBus interface. The boot overlay is not
// applied.
func (rom *ROM) Peek(address uint32) (uint8, error) {
	return rom.data[address&rom.mask], nil
}

// Poke implements the bus.DebugBus interface. Unlike Write(), Poke() does
// change the ROM contents.
func (rom *ROM) Poke(address uint32, value uint8) error {
	rom.data[address&rom.mask] = value
	return nil
}
