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

// Package mmu emulates the paged memory management unit of a 68030-class
// CPU.
//
// A logical address is translated to a physical address in the following
// order:
//
//	logical address ---- TT0 ---- TT1 ---- ATC ---- table walk ---- physical address
//
// The transparent translation registers (TT0 and TT1) define windows of the
// logical address space that bypass paging altogether. TT0 is consulted
// first and if it matches TT1 is never consulted. A window can be
// restricted to reads or to writes, in which case an access in the other
// direction is a DirectionViolation fault.
//
// The address translation cache (ATC) holds the results of recent table
// walks. It is indexed by logical page and function code. Disabling the ATC
// does not change the result of any translation, only the number of table
// walks performed.
//
// The table walk follows the root pointer selected by the access, through
// at most four levels of tables (plus an optional function code level) as
// described by the translation control register (TC). Descriptors are
// fetched from physical memory through the Bus interface and are either
// short (4 bytes) or long (8 bytes). A page descriptor found before the last
// level terminates the walk early, in which case the unused index bits of
// the logical address become part of the page offset. The walk maintains the
// used and modified history bits of the descriptors it visits.
//
// Faults are returned as errors of type Fault. The MMU never raises a CPU
// exception itself.
package mmu
