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

package memory

import (
	"fmt"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/banks"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/logger"
)

// Memory is the physical address space.
type Memory struct {
	prefs *preferences.Preferences

	table [memorymap.NumSlots]bus.Bank

	// RAM banks. an entry is nil if the bank is unpopulated
	RAM   [memorymap.RAMBanks]*banks.RAM
	Empty [memorymap.RAMBanks]*banks.Empty

	ROM    *banks.ROM
	VRAM   *banks.Video
	IO     *banks.IO
	BusErr banks.BusError

	// storage for all RAM banks
	ram []byte

	// physical address of the boot overlay. resolved on reset
	overlay uint32
}

// NewMemory is the preferred method of initialisation for the Memory type.
// ROM and IO banks survive a Reset() so the ROM image is loaded and devices
// attached only once.
func NewMemory(prefs *preferences.Preferences) *Memory {
	mem := &Memory{
		prefs: prefs,
		ROM:   banks.NewROM(),
		IO:    banks.NewIO(),
	}
	mem.ROM.SetOverlay(func() bool {
		return mem.prefs.BootOverlay.Get().(bool)
	}, mem, mem.OverlayTarget)
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return mem.Summary().String()
}

// Reset is a cold reset. The contents of RAM and VRAM are lost and the slot
// table is rebuilt from the current preferences.
func (mem *Memory) Reset() {
	quirk := func() bool {
		return mem.prefs.EmptyQuirk.Get().(bool)
	}

	mem.Map(mem.BusErr, 0, memorymap.NumSlots)

	mem.Map(mem.ROM, memorymap.Slot(memorymap.OriginBootROM), memorymap.Slots(memorymap.SizeROM))
	mem.Map(mem.ROM, memorymap.Slot(memorymap.OriginROM), memorymap.Slots(memorymap.SizeROM))

	mem.Map(mem.IO, memorymap.Slot(memorymap.OriginIO), memorymap.Slots(memorymap.SizeIO))
	mem.Map(mem.IO, memorymap.Slot(memorymap.MirrorIO), memorymap.Slots(memorymap.SizeIO))

	mem.ram = make([]byte, mem.prefs.RAMSize())
	var idx uint32

	for i := range mem.RAM {
		origin := memorymap.OriginRAMBank(i)
		size := mem.prefs.RAMBankSize(i)

		mem.RAM[i] = nil
		if size > 0 {
			mem.RAM[i] = banks.NewRAM(fmt.Sprintf("RAM bank %d", i), origin, mem.ram[idx:idx+size:idx+size])
			mem.Map(mem.RAM[i], memorymap.Slot(origin), memorymap.Slots(size))
			idx += size
		}

		mem.Empty[i] = banks.NewEmpty(fmt.Sprintf("empty bank %d", i), mem.RAM[i], quirk)
		if size < memorymap.RAMBankSpan {
			mem.Map(mem.Empty[i], memorymap.Slot(origin+size), memorymap.Slots(memorymap.RAMBankSpan-size))
		}
	}

	mem.overlay = mem.resolveOverlay()

	switch mem.prefs.Video.String() {
	case preferences.VideoColor:
		mem.VRAM = banks.NewVideo("VRAM (color)", memorymap.OriginColorVRAM, memorymap.SizeColorVRAM)
		mem.Map(mem.VRAM, memorymap.Slot(memorymap.OriginColorVRAM), memorymap.Slots(memorymap.SizeColorVRAM))
	default:
		mem.VRAM = banks.NewVideo("VRAM (mono)", memorymap.OriginMonoVRAM, memorymap.SizeMonoVRAM)
		mem.Map(mem.VRAM, memorymap.Slot(memorymap.OriginMonoVRAM), memorymap.Slots(memorymap.RAMBankSpan))
	}

	logger.Logf(logger.Allow, "memory", "reset: %dMiB RAM, %s", len(mem.ram)>>20, mem.VRAM.Label())
}

// OverlayTarget returns the physical address that the boot overlay reads
// from.
func (mem *Memory) OverlayTarget() uint32 {
	return mem.overlay
}

// the boot overlay sits at the top of a RAM bank span. if that bank is not
// fully populated the target wraps into the fitted memory, in the same way
// as a long word write to the empty part of the bank. if the bank is not
// populated at all the top of the highest populated bank is used
func (mem *Memory) resolveOverlay() uint32 {
	bank := (memorymap.OverlayTarget - memorymap.OriginRAM) / memorymap.RAMBankSpan
	if ram := mem.RAM[bank]; ram != nil {
		return ram.Origin() + (memorymap.OverlayTarget-ram.Origin())%ram.Size()
	}
	for i := len(mem.RAM) - 1; i >= 0; i-- {
		if ram := mem.RAM[i]; ram != nil {
			return ram.Origin() + ram.Size() - memorymap.OverlayTop
		}
	}
	return memorymap.OverlayTarget
}

// Map count consecutive slots, starting with the start slot, to the bank.
// Slots that have already been mapped are overwritten.
//
// Mapping only happens during reset and the arguments are always derived
// from validated preferences. A nil bank or a range that does not fit in
// the slot table is a programming error and causes a panic.
func (mem *Memory) Map(bank bus.Bank, start int, count int) {
	if bank == nil {
		panic("memory: cannot map a nil bank")
	}
	if start < 0 || count < 0 || start+count > memorymap.NumSlots {
		panic(fmt.Sprintf("memory: slot range %d+%d is outside of the slot table", start, count))
	}
	for i := start; i < start+count; i++ {
		mem.table[i] = bank
	}
}

// BankAt returns the bank mapped at the address.
func (mem *Memory) BankAt(address uint32) bus.Bank {
	return mem.table[address>>memorymap.SlotShift]
}

// Label returns the label of the bank mapped at the address.
func (mem *Memory) Label(address uint32) string {
	return mem.BankAt(address).Label()
}

// Read implements the bus.Reader interface.
func (mem *Memory) Read(sz bus.Size, address uint32) (uint32, error) {
	return mem.table[address>>memorymap.SlotShift].Read(sz, address)
}

// Write implements the bus.Writer interface.
func (mem *Memory) Write(sz bus.Size, address uint32, data uint32) error {
	return mem.table[address>>memorymap.SlotShift].Write(sz, address, data)
}

// Translate returns the host memory backing the physical address.
func (mem *Memory) Translate(address uint32) ([]byte, error) {
	return mem.table[address>>memorymap.SlotShift].Translate(address)
}

// Check returns true if size bytes starting at the physical address are
// backed by host memory.
func (mem *Memory) Check(address uint32, size uint32) bool {
	return mem.table[address>>memorymap.SlotShift].Check(address, size)
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	bank := mem.BankAt(address)
	if d, ok := bank.(bus.DebugBus); ok {
		return d.Peek(address)
	}
	return 0, curated.Errorf(bus.NotPeekable, bank.Label(), address)
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint32, value uint8) error {
	bank := mem.BankAt(address)
	if d, ok := bank.(bus.DebugBus); ok {
		return d.Poke(address, value)
	}
	return curated.Errorf(bus.NotPeekable, bank.Label(), address)
}

// LoadROM copies the image into the ROM bank.
func (mem *Memory) LoadROM(image []byte) error {
	if err := mem.ROM.Load(image); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	return nil
}
