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

import "strings"

// Access describes a memory access made by the CPU.
type Access struct {
	Supervisor bool

	// Data is false for an instruction fetch
	Data bool

	Write bool
}

// Function code values. The function code for an access is derived from
// the Access fields.
const (
	FCUserData          = 1
	FCUserProgram       = 2
	FCSupervisorData    = 5
	FCSupervisorProgram = 6
)

// FunctionCode returns the three bit function code for the access.
func (acc Access) FunctionCode() uint8 {
	var fc uint8
	if acc.Supervisor {
		fc |= 0x04
	}
	if acc.Data {
		fc |= 0x01
	} else {
		fc |= 0x02
	}
	return fc
}

func (acc Access) String() string {
	s := strings.Builder{}
	if acc.Supervisor {
		s.WriteString("supervisor ")
	} else {
		s.WriteString("user ")
	}
	if acc.Data {
		s.WriteString("data ")
	} else {
		s.WriteString("program ")
	}
	if acc.Write {
		s.WriteString("write")
	} else {
		s.WriteString("read")
	}
	return s.String()
}

// AccessFromFC is the inverse of FunctionCode(). A function code with
// neither the data nor the program bit set is treated as a data access.
func AccessFromFC(fc uint8, write bool) Access {
	return Access{
		Supervisor: fc&0x04 == 0x04,
		Data:       fc&0x02 == 0x00,
		Write:      write,
	}
}
