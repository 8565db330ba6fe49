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
	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
)

// BusError is mapped to every part of the address space where nothing
// answers. Every access is a bus error.
type BusError struct{}

// Label implements the bus.Bank interface.
func (BusError) Label() string {
	return "bus error"
}

// Read implements the bus.Bank interface.
func (b BusError) Read(sz bus.Size, address uint32) (uint32, error) {
	return 0, bus.Error(b.Label(), sz, false, address)
}

// Write implements the bus.Bank interface.
func (b BusError) Write(sz bus.Size, address uint32, _ uint32) error {
	return bus.Error(b.Label(), sz, true, address)
}

// Translate implements the bus.Bank interface.
func (b BusError) Translate(address uint32) ([]byte, error) {
	return nil, curated.Errorf(bus.NoHostMemory, b.Label(), address)
}

// Check implements the bus.Bank interface.
func (BusError) Check(_ uint32, _ uint32) bool {
	return false
}
