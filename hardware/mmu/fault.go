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

package mmu

import "fmt"

// FaultKind classifies a Fault.
type FaultKind int

// List of valid FaultKind values.
const (
	// a descriptor could not be fetched
	BusError FaultKind = iota

	// the walk found an invalid descriptor
	Invalid

	// a table index was outside the limit of the table. only returned if
	// limit checking is enforced
	LimitViolation

	// a user access to a page marked as supervisor only
	SupervisorViolation

	// a write to a write protected page
	WriteProtect

	// an access in the wrong direction for a transparent translation window
	DirectionViolation
)

func (k FaultKind) String() string {
	switch k {
	case BusError:
		return "bus error"
	case Invalid:
		return "invalid descriptor"
	case LimitViolation:
		return "limit violation"
	case SupervisorViolation:
		return "supervisor violation"
	case WriteProtect:
		return "write protect"
	case DirectionViolation:
		return "direction violation"
	}
	return "unknown fault"
}

// Fault is returned by Translate() when a logical address cannot be
// translated. It is up to the caller to raise the correct CPU exception.
type Fault struct {
	Kind    FaultKind
	Address uint32
	Access  Access

	// program counter at the time of the access. for information only
	PC uint32
}

func (f Fault) Error() string {
	return fmt.Sprintf("mmu: %s: %s at $%08x (PC=$%08x)", f.Kind, f.Access, f.Address, f.PC)
}

// IsFault returns the Fault if the error is a Fault.
func IsFault(err error) (Fault, bool) {
	f, ok := err.(Fault)
	return f, ok
}
