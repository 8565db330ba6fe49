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
	"fmt"
)

// RAM is one bank of main memory. The size of the bank is the size of the
// memory fitted and not the size of the span of address space reserved for
// it. The unpopulated part of the span is served by an Empty bank.
type RAM struct {
	store
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// length of data must be a power of two. The slice is used directly as the
// storage for the bank and is not copied.
func NewRAM(label string, origin uint32, data []byte) *RAM {
	return &RAM{store: newStore(label, origin, data)}
}

func (ram *RAM) String() string {
	return fmt.Sprintf("%s: %dKiB at $%08x", ram.label, len(ram.data)>>10, ram.origin)
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.data)
}
