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
	"github.com/jetsetilly/cube030/logger"
)

// Empty serves the part of a RAM bank's address span that has no memory
// fitted.
//
// With the quirk enabled it reproduces the behaviour of the real machine:
// byte and word accesses are bus errors, a long word read returns the
// address being read, and a long word write wraps around into the
// populated part of the bank. With the quirk disabled every access is a bus
// error.
type Empty struct {
	label string

	// the RAM bank that long word writes are redirected to. may be nil if
	// the bank is unpopulated
	owner *RAM

	// returns true if the quirk is enabled. if nil the quirk is enabled
	quirk func() bool
}

// NewEmpty is the preferred method of initialisation for the Empty type.
func NewEmpty(label string, owner *RAM, quirk func() bool) *Empty {
	return &Empty{
		label: label,
		owner: owner,
		quirk: quirk,
	}
}

func (emp *Empty) quirky() bool {
	return emp.quirk == nil || emp.quirk()
}

// Label implements the bus.Bank interface.
func (emp *Empty) Label() string {
	return emp.label
}

// Read implements the bus.Bank interface.
func (emp *Empty) Read(sz bus.Size, address uint32) (uint32, error) {
	if sz == bus.Long && emp.quirky() {
		return address, nil
	}
	return 0, bus.Error(emp.label, sz, false, address)
}

// Write implements the bus.Bank interface.
func (emp *Empty) Write(sz bus.Size, address uint32, data uint32) error {
	if sz != bus.Long || !emp.quirky() || emp.owner == nil || emp.owner.Size() == 0 {
		return bus.Error(emp.label, sz, true, address)
	}

	offset := (address - emp.owner.Origin()) % emp.owner.Size()
	logger.Logf(logger.Allow, "empty", "long write at $%08x redirected to %s offset $%08x", address, emp.owner.Label(), offset)
	return emp.owner.Write(sz, emp.owner.Origin()+offset, data)
}

// Translate implements the bus.Bank interface.
func (emp *Empty) Translate(address uint32) ([]byte, error) {
	return nil, curated.Errorf(bus.NoHostMemory, emp.label, address)
}

// Check implements the bus.Bank interface.
func (emp *Empty) Check(_ uint32, _ uint32) bool {
	return false
}
