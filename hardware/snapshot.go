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
	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory"
)

// State is the raw state of the memory subsystem. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
type State struct {
	Mem *memory.Snapshot
	MMU []byte
}

// Snapshot the state of memory and the MMU.
func (m *Machine) Snapshot() (*State, error) {
	m.crit.Lock()
	defer m.crit.Unlock()

	b, err := m.MMU.MarshalBinary()
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}
	return &State{
		Mem: m.Mem.Snapshot(),
		MMU: b,
	}, nil
}

// Plumb a previously snapshotted state. The memory layout must not have
// changed since the snapshot was taken.
func (m *Machine) Plumb(state *State) error {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	if err := m.Mem.Plumb(state.Mem); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	if err := m.MMU.UnmarshalBinary(state.MMU); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}
