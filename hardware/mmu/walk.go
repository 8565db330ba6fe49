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
	"github.com/jetsetilly/cube030/logger"
)

// result of a table walk.
type walkResult struct {
	physical uint32

	// flags for the ATC entry
	flags uint32

	status Status

	// physical address of the last descriptor fetched
	last uint32
}

// maximum number of descriptors fetched by a walk: function code level,
// four table levels and an indirect descriptor
const maxWalk = 6

// walk the translation tables for the address. history bits are only
// updated if history is true.
//
// the returned result is valid even if an error is returned, in which case
// it describes how far the walk went before failing. faults that depend on
// the type of access (supervisor and write protect violations) are not
// checked by walk().
func (mmu *MMU) walk(address uint32, acc Access, history bool) (walkResult, error) {
	var w walkResult

	fault := func(kind FaultKind) error {
		return Fault{Kind: kind, Address: address, Access: acc}
	}

	root := mmu.CRP
	if mmu.TC.SupervisorRoot && acc.Supervisor {
		root = mmu.SRP
	}

	dt := root.DescriptorType
	table := root.TableAddress

	// limit of the table being indexed
	lower, limit, limited := root.LowerLimit, root.Limit, true

	// mask of the address bits used to index tables so far
	var consumed uint32

	// descriptors visited, in order
	var visited [maxWalk]descriptor
	var n int

	var page descriptor
	var wp, supervisor bool

	switch dt {
	case DTInvalid:
		w.status.Invalid = true
		return w, fault(Invalid)

	case DTPage:
		// early termination at the root pointer. the table address is
		// the page address and no descriptors are fetched
		page = descriptor{status: DTPage, value: table, long: true}

	default:
		// the steps of the walk. the function code level does not consume
		// any address bits
		type step struct {
			index uint32
			mask  uint32
		}
		var steps [maxWalk - 1]step
		var ns int
		if mmu.TC.FunctionCodeLookup {
			steps[ns] = step{index: uint32(acc.FunctionCode())}
			ns++
		}
		for i := 0; i <= mmu.TC.LastTable; i++ {
			lvl := mmu.TC.Table[i]
			steps[ns] = step{index: (address & lvl.Mask) >> lvl.Shift, mask: lvl.Mask}
			ns++
		}

		for i := 0; i < ns; i++ {
			s := steps[i]

			if limited && ((lower && s.index < uint32(limit)) || (!lower && s.index > uint32(limit))) {
				w.status.Limit = true
				logger.Logf(logger.Allow, "mmu", "limit violation: index %d with limit %d at $%08x", s.index, limit, address)
				if mmu.enforceLimit() {
					w.status.Levels = n
					return w, fault(LimitViolation)
				}
			}

			d, err := fetch(mmu.mem, table+s.index*entrySize(dt), dt == DTValid8)
			w.last = d.address
			if err != nil {
				w.status.BusError = true
				w.status.Levels = n
				return w, fault(BusError)
			}
			consumed |= s.mask
			visited[n] = d
			n++

			wp = wp || d.is(descWriteProtect)
			supervisor = supervisor || d.supervisor()

			if d.dt() == DTInvalid {
				w.status.Invalid = true
				break
			}

			if d.dt() == DTPage {
				page = d
				break
			}

			if i == ns-1 {
				// a table descriptor at the last level is an indirect
				// descriptor. it points to the page descriptor and has no
				// history bits
				visited[n-1].indirect = true
				ind, err := fetch(mmu.mem, d.indirectAddress(), d.dt() == DTValid8)
				w.last = ind.address
				if err != nil {
					w.status.BusError = true
					w.status.Levels = n
					return w, fault(BusError)
				}
				visited[n] = ind
				n++

				wp = wp || ind.is(descWriteProtect)
				supervisor = supervisor || ind.supervisor()

				if ind.dt() != DTPage {
					w.status.Invalid = true
					break
				}
				page = ind
				break
			}

			table = d.tableAddress()
			dt = d.dt()
			lower, limit, limited = d.limit()
		}
	}

	w.status.Levels = n
	w.status.WriteProtected = wp
	w.status.Supervisor = supervisor && !acc.Supervisor

	if w.status.Invalid {
		w.flags = atcBusError
		return w, fault(Invalid)
	}

	// the page offset includes the index bits of any table levels that were
	// not reached because of early termination
	offset := mmu.TC.PageMask
	for i := 0; i <= mmu.TC.LastTable; i++ {
		offset |= mmu.TC.Table[i].Mask &^ consumed
	}
	w.physical = page.pageAddress() + address&offset

	if history {
		for i := 0; i < n; i++ {
			if !visited[i].indirect {
				visited[i].set(descUsed)
			}
		}
		if n > 0 && acc.Write && !wp && !w.status.Supervisor {
			visited[n-1].set(descModified)
		}
		for i := 0; i < n; i++ {
			if err := visited[i].writeback(mmu.mem); err != nil {
				w.status.BusError = true
				return w, fault(BusError)
			}
		}
		if n > 0 {
			page = visited[n-1]
		}
	}

	w.status.Modified = page.is(descModified)

	if wp {
		w.flags |= atcWriteProtect
	}
	if supervisor {
		w.flags |= atcSupervisor
	}
	if page.is(descCacheInhibit) {
		w.flags |= atcCacheInhibit
	}
	if w.status.Modified {
		w.flags |= atcModified
	}

	return w, nil
}
