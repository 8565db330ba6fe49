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
	"github.com/jetsetilly/cube030/curated"
)

// Snapshot is a copy of the raw bytes held by the memory banks.
type Snapshot struct {
	RAM  []byte
	ROM  []byte
	VRAM []byte
}

// Snapshot creates a copy of the contents of RAM, ROM and VRAM.
func (mem *Memory) Snapshot() *Snapshot {
	return &Snapshot{
		RAM:  clone(mem.ram),
		ROM:  clone(mem.ROM.Data()),
		VRAM: clone(mem.VRAM.Data()),
	}
}

// Sentinel error returned by Plumb().
const SnapshotMismatch = "memory: snapshot does not fit: %s is %d bytes, expected %d"

// Plumb restores the contents of a snapshot. The layout of the memory must
// be the same as when the snapshot was taken.
func (mem *Memory) Plumb(s *Snapshot) error {
	if len(s.RAM) != len(mem.ram) {
		return curated.Errorf(SnapshotMismatch, "RAM", len(s.RAM), len(mem.ram))
	}
	if len(s.ROM) != len(mem.ROM.Data()) {
		return curated.Errorf(SnapshotMismatch, "ROM", len(s.ROM), len(mem.ROM.Data()))
	}
	if len(s.VRAM) != len(mem.VRAM.Data()) {
		return curated.Errorf(SnapshotMismatch, "VRAM", len(s.VRAM), len(mem.VRAM.Data()))
	}
	copy(mem.ram, s.RAM)
	copy(mem.ROM.Data(), s.ROM)
	copy(mem.VRAM.Data(), s.VRAM)
	return nil
}

func clone(b []byte) []byte {
	n := make([]byte, len(b))
	copy(n, b)
	return n
}
