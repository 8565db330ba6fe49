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
	"strings"

	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
)

// Region is a run of consecutive slots mapped to the same bank.
type Region struct {
	Origin uint32
	Memtop uint32
	Bank   bus.Bank
}

func (r Region) String() string {
	return fmt.Sprintf("$%08x - $%08x %s", r.Origin, r.Memtop, r.Bank.Label())
}

// Summary is the list of regions in the slot table, in address order.
type Summary []Region

func (s Summary) String() string {
	b := strings.Builder{}
	for _, r := range s {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Summary coalesces the slot table into regions.
func (mem *Memory) Summary() Summary {
	var s Summary
	start := 0
	for i := 1; i <= memorymap.NumSlots; i++ {
		if i < memorymap.NumSlots && mem.table[i] == mem.table[start] {
			continue
		}
		s = append(s, Region{
			Origin: uint32(start) << memorymap.SlotShift,
			Memtop: uint32(i)<<memorymap.SlotShift - 1,
			Bank:   mem.table[start],
		})
		start = i
	}
	return s
}
