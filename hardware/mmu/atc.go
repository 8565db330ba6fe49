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

// ATCEntries is the number of entries in the address translation cache.
const ATCEntries = 22

// Bit layout of the logical tag of an ATC entry. The page bits of the
// logical address occupy the bits above the function code.
const (
	atcValid   = 0x00000001
	atcFCShift = 1
	atcFCMask  = 0x0000000e
)

// Bit layout of the physical field of an ATC entry. The page bits of the
// physical address occupy the bits above the flags.
const (
	// the walk for the page found an invalid descriptor
	atcBusError = 0x00000001

	atcWriteProtect = 0x00000002
	atcModified     = 0x00000004
	atcCacheInhibit = 0x00000008
	atcSupervisor   = 0x00000010
	atcFlags        = 0x0000001f
)

// ATCEntry is a single entry in the address translation cache.
type ATCEntry struct {
	Logical  uint32
	Physical uint32
}

// Valid returns true if the entry is in use.
func (e ATCEntry) Valid() bool {
	return e.Logical&atcValid == atcValid
}

// FunctionCode returns the function code of the access that created the
// entry.
func (e ATCEntry) FunctionCode() uint8 {
	return uint8(e.Logical&atcFCMask) >> atcFCShift
}

func (e ATCEntry) String() string {
	if !e.Valid() {
		return "-"
	}
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08x -> %08x FC=%d", e.Logical&^(atcFCMask|atcValid), e.Physical&^atcFlags, e.FunctionCode()))
	if e.Physical&atcBusError == atcBusError {
		s.WriteString(" B")
	}
	if e.Physical&atcWriteProtect == atcWriteProtect {
		s.WriteString(" WP")
	}
	if e.Physical&atcModified == atcModified {
		s.WriteString(" M")
	}
	if e.Physical&atcCacheInhibit == atcCacheInhibit {
		s.WriteString(" CI")
	}
	if e.Physical&atcSupervisor == atcSupervisor {
		s.WriteString(" S")
	}
	return s.String()
}

// ATC is the address translation cache. Entries are replaced in the order
// in which they were inserted.
type ATC struct {
	Entries [ATCEntries]ATCEntry

	// the entry that will be replaced next
	next int
}

func (atc *ATC) String() string {
	s := strings.Builder{}
	for i, e := range atc.Entries {
		s.WriteString(fmt.Sprintf("%2d: %s\n", i, e))
	}
	return s.String()
}

func tag(address uint32, fc uint8, pageMask uint32) uint32 {
	return address&^pageMask | uint32(fc)<<atcFCShift&atcFCMask | atcValid
}

// lookup returns the entry for the logical page containing the address.
func (atc *ATC) lookup(address uint32, fc uint8, pageMask uint32) (ATCEntry, bool) {
	t := tag(address, fc, pageMask)
	for _, e := range atc.Entries {
		if e.Logical == t {
			return e, true
		}
	}
	return ATCEntry{}, false
}

// insert an entry for the logical page containing the address. an existing
// entry for the page is replaced in place.
func (atc *ATC) insert(address uint32, fc uint8, pageMask uint32, physical uint32, flags uint32) {
	t := tag(address, fc, pageMask)
	e := ATCEntry{
		Logical:  t,
		Physical: physical&^pageMask | flags&atcFlags,
	}
	for i := range atc.Entries {
		if atc.Entries[i].Logical == t {
			atc.Entries[i] = e
			return
		}
	}
	atc.Entries[atc.next] = e
	atc.next = (atc.next + 1) % ATCEntries
}

// FlushAll invalidates every entry.
func (atc *ATC) FlushAll() {
	atc.Entries = [ATCEntries]ATCEntry{}
	atc.next = 0
}

// FlushFC invalidates every entry with a function code matching fc. Only
// the bits of the function code set in mask are compared.
func (atc *ATC) FlushFC(fc uint8, mask uint8) {
	for i, e := range atc.Entries {
		if e.Valid() && (e.FunctionCode()^fc)&mask&0x07 == 0 {
			atc.Entries[i] = ATCEntry{}
		}
	}
}

// FlushPage invalidates every entry for the logical page containing the
// address with a function code matching fc. Only the bits of the function
// code set in mask are compared.
func (atc *ATC) FlushPage(address uint32, fc uint8, mask uint8, pageMask uint32) {
	page := address &^ pageMask
	for i, e := range atc.Entries {
		if e.Valid() && e.Logical&^(pageMask|atcFCMask|atcValid) == page && (e.FunctionCode()^fc)&mask&0x07 == 0 {
			atc.Entries[i] = ATCEntry{}
		}
	}
}

// Used returns the number of valid entries.
func (atc *ATC) Used() int {
	n := 0
	for _, e := range atc.Entries {
		if e.Valid() {
			n++
		}
	}
	return n
}
