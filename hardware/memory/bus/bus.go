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

package bus

import (
	"github.com/jetsetilly/cube030/curated"
)

// Size is the width of a bus access.
type Size int

// List of valid Size values. The value is the number of bytes transferred.
const (
	Byte Size = 1
	Word Size = 2
	Long Size = 4
)

func (sz Size) String() string {
	switch sz {
	case Byte:
		return "byte"
	case Word:
		return "word"
	case Long:
		return "long"
	}
	return "unknown size"
}

// Mask returns the data mask for the access width.
func (sz Size) Mask() uint32 {
	switch sz {
	case Byte:
		return 0xff
	case Word:
		return 0xffff
	}
	return 0xffffffff
}

// Reader is implemented by anything that can service a physical read. It is
// used by banks that redirect accesses to other parts of the address space
// and by the MMU when fetching descriptors.
type Reader interface {
	Read(sz Size, address uint32) (uint32, error)
}

// Writer is the counterpart to Reader.
type Writer interface {
	Write(sz Size, address uint32, data uint32) error
}

// Bank is implemented by every region handler. A single Bank instance is
// shared by every slot it is mapped to.
type Bank interface {
	Reader
	Writer

	// Label is a short description of the region, used for logging and by
	// the debugger.
	Label() string

	// Translate returns the host memory backing the address. The first
	// byte of the slice corresponds to the address. Banks without host
	// memory return an error created with the NoHostMemory pattern.
	Translate(address uint32) ([]byte, error)

	// Check returns true if an access of size bytes, starting at address,
	// lies entirely within the backing store of the bank.
	Check(address uint32, size uint32) bool
}

// DebugBus defines the meta-operations for memory areas. These operations
// sit outside the normal operation of the machine and never have side
// effects.
type DebugBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}

// Sentinel error patterns returned by banks.
const (
	// bank label, access size, "read" or "write", address
	BusError = "bus error: %s: %s %s at $%08x"

	// bank label, address
	NoHostMemory = "bus: %s: no host memory at $%08x"

	// bank label, address
	NotPeekable = "bus: %s: not peekable at $%08x"
)

// Error returns a new error created with the BusError pattern.
func Error(label string, sz Size, write bool, address uint32) error {
	dir := "read"
	if write {
		dir = "write"
	}
	return curated.Errorf(BusError, label, sz, dir, address)
}
