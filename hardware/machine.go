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

package hardware

import (
	"sync"

	"github.com/jetsetilly/cube030/hardware/memory"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/mmu"
	"github.com/jetsetilly/cube030/hardware/preferences"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences
	Mem   *memory.Memory
	MMU   *mmu.MMU

	// the CPU core is the only user of the Read() and Write() functions but
	// the debugger may inspect the machine from another goroutine with the
	// Borrow() function
	crit sync.Mutex
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(prefs *preferences.Preferences) *Machine {
	m := &Machine{Prefs: prefs}
	m.Mem = memory.NewMemory(prefs)
	m.MMU = mmu.NewMMU(prefs, m.Mem)
	return m
}

// Reset is a cold reset of memory and the MMU. The contents of ROM are kept.
func (m *Machine) Reset() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.Mem.Reset()
	m.MMU.Reset()
}

// Borrow the machine for the duration of the function. The CPU core will not
// access memory until the function returns.
func (m *Machine) Borrow(f func(*Machine) error) error {
	m.crit.Lock()
	defer m.crit.Unlock()
	return f(m)
}

// an access that crosses a page boundary is split into byte accesses so that
// each byte is translated separately
func (m *Machine) crosses(sz bus.Size, address uint32) bool {
	if !m.MMU.TC.Enabled || sz == bus.Byte {
		return false
	}
	pm := m.MMU.TC.PageMask
	return address&pm+uint32(sz)-1 > pm
}

// Read from the logical address. The pc value is used for fault reporting.
// An error is either an mmu.Fault or a bus error from the region handler.
func (m *Machine) Read(sz bus.Size, address uint32, acc mmu.Access, pc uint32) (uint32, error) {
	m.crit.Lock()
	defer m.crit.Unlock()

	if m.crosses(sz, address) {
		var v uint32
		for i := uint32(0); i < uint32(sz); i++ {
			b, err := m.read(bus.Byte, address+i, acc, pc)
			if err != nil {
				return 0, err
			}
			v = v<<8 | b
		}
		return v, nil
	}

	return m.read(sz, address, acc, pc)
}

func (m *Machine) read(sz bus.Size, address uint32, acc mmu.Access, pc uint32) (uint32, error) {
	phys, err := m.MMU.Translate(address, acc, pc)
	if err != nil {
		return 0, err
	}
	return m.Mem.Read(sz, phys)
}

// Write to the logical address. The pc value is used for fault reporting.
// An error is either an mmu.Fault or a bus error from the region handler.
func (m *Machine) Write(sz bus.Size, address uint32, data uint32, acc mmu.Access, pc uint32) error {
	m.crit.Lock()
	defer m.crit.Unlock()

	acc.Write = true

	if m.crosses(sz, address) {
		// translate every byte before writing any of them
		phys := make([]uint32, sz)
		for i := range phys {
			var err error
			phys[i], err = m.MMU.Translate(address+uint32(i), acc, pc)
			if err != nil {
				return err
			}
		}
		for i, p := range phys {
			shift := 8 * (len(phys) - 1 - i)
			if err := m.Mem.Write(bus.Byte, p, data>>shift&0xff); err != nil {
				return err
			}
		}
		return nil
	}

	phys, err := m.MMU.Translate(address, acc, pc)
	if err != nil {
		return err
	}
	return m.Mem.Write(sz, phys, data)
}
