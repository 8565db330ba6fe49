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

	"github.com/jetsetilly/cube030/hardware/memory/bus"
)

// store is the masked, host backed storage shared by RAM and Video banks.
// The length of data must be a power of two.
type store struct {
	label  string
	origin uint32
	data   []byte
	mask   uint32
}

func newStore(label string, origin uint32, data []byte) store {
	return store{
		label:  label,
		origin: origin,
		data:   data,
		mask:   uint32(len(data) - 1),
	}
}

func (s *store) String() string {
	return hex.Dump(s.data)
}

// Label implements the bus.Bank interface.
func (s *store) Label() string {
	return s.label
}

// Origin is the physical address of the first byte of the storage.
func (s *store) Origin() uint32 {
	return s.origin
}

// Size of the storage in bytes.
func (s *store) Size() uint32 {
	return uint32(len(s.data))
}

// Data returns the storage. The returned slice is not a copy.
func (s *store) Data() []byte {
	return s.data
}

// Read implements the bus.Bank interface.
func (s *store) Read(sz bus.Size, address uint32) (uint32, error) {
	return bus.Get(s.data, s.mask, address, sz), nil
}

// Write implements the bus.Bank interface.
func (s *store) Write(sz bus.Size, address uint32, data uint32) error {
	bus.Put(s.data, s.mask, address, sz, data)
	return nil
}

// Translate implements the bus.Bank interface.
func (s *store) Translate(address uint32) ([]byte, error) {
	return s.data[address&s.mask:], nil
}

// Check implements the bus.Bank interface.
func (s *store) Check(address uint32, size uint32) bool {
	return uint64(address&s.mask)+uint64(size) <= uint64(len(s.data))
}

// Peek implements the bus.DebugBus interface.
func (s *store) Peek(address uint32) (uint8, error) {
	return s.data[address&s.mask], nil
}

// Poke implements the bus.DebugBus interface.
func (s *store) Poke(address uint32, value uint8) error {
	s.data[address&s.mask] = value
	return nil
}
