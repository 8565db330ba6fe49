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

// Package rewind keeps a history of machine states. States are added to the
// history on request and any entry in the history can be plumbed back into
// the machine.
package rewind

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/digest"
	"github.com/jetsetilly/cube030/hardware"
)

// the maximum number of entries to store before the earliest entries are
// forgotten
const maxEntries = 32

// Sentinel errors.
const (
	NoEntry = "rewind: no entry %d"
)

// Entry is a single snapshot in the history.
type Entry struct {
	Label string
	State *hardware.State

	// digest of the snapshot
	Hash string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.Hash[:8], e.Label)
}

// Rewind contains a history of machine states.
type Rewind struct {
	vm *hardware.Machine

	// circular array of snapshotted entries. start is the index of the
	// earliest entry and n is the number of entries
	entries [maxEntries]Entry
	start   int
	n       int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(vm *hardware.Machine) *Rewind {
	return &Rewind{vm: vm}
}

// Reset removes all entries from the history.
func (r *Rewind) Reset() {
	r.start = 0
	r.n = 0
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return r.n
}

// Save a snapshot of the machine to the history. If the history is full the
// earliest entry is forgotten.
func (r *Rewind) Save(label string) (Entry, error) {
	s, err := r.vm.Snapshot()
	if err != nil {
		return Entry{}, curated.Errorf("rewind: %v", err)
	}

	e := Entry{
		Label: label,
		State: s,
		Hash:  digest.Snapshot(s),
	}

	if r.n < maxEntries {
		r.entries[(r.start+r.n)%maxEntries] = e
		r.n++
	} else {
		r.entries[r.start] = e
		r.start = (r.start + 1) % maxEntries
	}

	return e, nil
}

// Get returns the entry at index n. The earliest entry is at index zero.
func (r *Rewind) Get(n int) (Entry, error) {
	if n < 0 || n >= r.n {
		return Entry{}, curated.Errorf(NoEntry, n)
	}
	return r.entries[(r.start+n)%maxEntries], nil
}

// Goto plumbs the entry at index n into the machine. The entry remains in the
// history.
func (r *Rewind) Goto(n int) (Entry, error) {
	e, err := r.Get(n)
	if err != nil {
		return Entry{}, err
	}
	if err := r.vm.Plumb(e.State); err != nil {
		return Entry{}, curated.Errorf("rewind: %v", err)
	}
	return e, nil
}

func (r *Rewind) String() string {
	if r.n == 0 {
		return "no entries"
	}
	s := strings.Builder{}
	for i := 0; i < r.n; i++ {
		s.WriteString(fmt.Sprintf("%2d %s\n", i, r.entries[(r.start+i)%maxEntries]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
