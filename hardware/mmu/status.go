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

import (
	"fmt"
	"strings"
)

// Status is the MMU status register (MMUSR). It is written by PTEST.
type Status struct {
	BusError       bool
	Limit          bool
	Supervisor     bool
	WriteProtected bool
	Invalid        bool
	Modified       bool
	Transparent    bool

	// number of levels searched
	Levels int
}

// Bit layout of the MMUSR.
const (
	srBusError       = 0x8000
	srLimit          = 0x4000
	srSupervisor     = 0x2000
	srWriteProtected = 0x0800
	srInvalid        = 0x0400
	srModified       = 0x0200
	srTransparent    = 0x0040
	srLevels         = 0x0007
)

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "MMUSR"
}

func (sr Status) String() string {
	s := strings.Builder{}
	flag := func(v bool, r rune) {
		if v {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	flag(sr.BusError, 'B')
	flag(sr.Limit, 'L')
	flag(sr.Supervisor, 'S')
	flag(sr.WriteProtected, 'W')
	flag(sr.Invalid, 'I')
	flag(sr.Modified, 'M')
	flag(sr.Transparent, 'T')
	s.WriteString(fmt.Sprintf(" N=%d", sr.Levels))
	return s.String()
}

// Value converts the Status struct into the raw register value.
func (sr Status) Value() uint16 {
	var v uint16
	if sr.BusError {
		v |= srBusError
	}
	if sr.Limit {
		v |= srLimit
	}
	if sr.Supervisor {
		v |= srSupervisor
	}
	if sr.WriteProtected {
		v |= srWriteProtected
	}
	if sr.Invalid {
		v |= srInvalid
	}
	if sr.Modified {
		v |= srModified
	}
	if sr.Transparent {
		v |= srTransparent
	}
	v |= uint16(min(sr.Levels, srLevels))
	return v
}

// FromValue sets the Status fields from a raw register value.
func (sr *Status) FromValue(v uint16) {
	sr.BusError = v&srBusError == srBusError
	sr.Limit = v&srLimit == srLimit
	sr.Supervisor = v&srSupervisor == srSupervisor
	sr.WriteProtected = v&srWriteProtected == srWriteProtected
	sr.Invalid = v&srInvalid == srInvalid
	sr.Modified = v&srModified == srModified
	sr.Transparent = v&srTransparent == srTransparent
	sr.Levels = int(v & srLevels)
}
