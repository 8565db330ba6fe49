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

	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/logger"
)

// Bus is the physical address space as seen by the MMU. Descriptors are
// read from and history bits written to the Bus.
type Bus interface {
	bus.Reader
	bus.Writer
}

// Stats counts the work done by the MMU. Calls to Probe() and PTest() are
// not counted.
type Stats struct {
	Walks     uint64
	ATCHits   uint64
	ATCMisses uint64
	TTHits    uint64
	Faults    uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("walks=%d atc hits=%d atc misses=%d tt hits=%d faults=%d", s.Walks, s.ATCHits, s.ATCMisses, s.TTHits, s.Faults)
}

// MMU is the memory management unit.
type MMU struct {
	prefs *preferences.Preferences
	mem   Bus

	TC  TranslationControl
	SRP RootPointer
	CRP RootPointer
	TT  [2]TransparentTranslation

	mmusr Status

	ATC        ATC
	atcEnabled bool

	Stats Stats
}

// NewMMU is the preferred method of initialisation for the MMU type.
func NewMMU(prefs *preferences.Preferences, mem Bus) *MMU {
	mmu := &MMU{
		prefs: prefs,
		mem:   mem,
	}
	mmu.Reset()
	return mmu
}

// Reset the MMU to its power on state. Translation is disabled.
func (mmu *MMU) Reset() {
	mmu.TC = DecodeTC(0)
	mmu.SRP = DecodeRootPointer(0)
	mmu.CRP = DecodeRootPointer(0)
	mmu.TT[0] = DecodeTT(0)
	mmu.TT[1] = DecodeTT(0)
	mmu.mmusr = Status{}
	mmu.ATC.FlushAll()
	mmu.atcEnabled = mmu.prefs.ATC.Get().(bool)
	mmu.Stats = Stats{}
}

func (mmu *MMU) enforceLimit() bool {
	return mmu.prefs.EnforceLimit.Get().(bool)
}

func (mmu *MMU) ttFunctionCodes() bool {
	return mmu.prefs.TTFunctionCodes.Get().(bool)
}

// the ATC cannot hold entries for pages smaller than 256 bytes
func (mmu *MMU) cacheable() bool {
	return mmu.atcEnabled && mmu.TC.PageBits >= 8
}

// SetATCEnabled turns the address translation cache on or off. With the
// ATC off every translation requires a table walk. The ATC is flushed in
// both cases.
func (mmu *MMU) SetATCEnabled(enabled bool) {
	mmu.atcEnabled = enabled
	mmu.ATC.FlushAll()
}

// WriteTC is called when the CPU writes to the TC register. The ATC is
// flushed.
func (mmu *MMU) WriteTC(raw uint32) {
	mmu.TC = DecodeTC(raw)
	mmu.ATC.FlushAll()
	logger.Logf(logger.Allow, "mmu", "%s", mmu.TC)
	for _, p := range mmu.TC.Problems() {
		logger.Logf(logger.Allow, "mmu", "configuration warning: %s", p)
	}
}

// WriteSRP is called when the CPU writes to the SRP register. The ATC is
// flushed.
func (mmu *MMU) WriteSRP(raw uint64) {
	mmu.SRP = DecodeRootPointer(raw)
	mmu.ATC.FlushAll()
	logger.Logf(logger.Allow, "mmu", "SRP=%s", mmu.SRP)
}

// WriteCRP is called when the CPU writes to the CRP register. The ATC is
// flushed.
func (mmu *MMU) WriteCRP(raw uint64) {
	mmu.CRP = DecodeRootPointer(raw)
	mmu.ATC.FlushAll()
	logger.Logf(logger.Allow, "mmu", "CRP=%s", mmu.CRP)
}

// WriteTT0 is called when the CPU writes to the TT0 register.
func (mmu *MMU) WriteTT0(raw uint32) {
	mmu.TT[0] = DecodeTT(raw)
	logger.Logf(logger.Allow, "mmu", "TT0=%s", mmu.TT[0])
}

// WriteTT1 is called when the CPU writes to the TT1 register.
func (mmu *MMU) WriteTT1(raw uint32) {
	mmu.TT[1] = DecodeTT(raw)
	logger.Logf(logger.Allow, "mmu", "TT1=%s", mmu.TT[1])
}

// WriteMMUSR is called when the CPU writes to the MMUSR register.
func (mmu *MMU) WriteMMUSR(raw uint16) {
	mmu.mmusr.FromValue(raw)
}

// MMUSR returns the MMU status register.
func (mmu *MMU) MMUSR() Status {
	return mmu.mmusr
}

// MatchTT matches the address against TT0 and then TT1. The result of the
// first register to match is returned.
func (mmu *MMU) MatchTT(address uint32, acc Access) TTResult {
	fc := mmu.ttFunctionCodes()
	for _, tt := range mmu.TT {
		if r := tt.Match(address, acc, fc); r != NoMatch {
			return r
		}
	}
	return NoMatch
}

// check the access against the flags of an ATC entry or table walk.
func check(acc Access, flags uint32) (FaultKind, bool) {
	if flags&atcBusError == atcBusError {
		return Invalid, true
	}
	if flags&atcSupervisor == atcSupervisor && !acc.Supervisor {
		return SupervisorViolation, true
	}
	if flags&atcWriteProtect == atcWriteProtect && acc.Write {
		return WriteProtect, true
	}
	return 0, false
}

// Translate a logical address to a physical address. The pc argument is
// used for fault reporting only.
//
// Any error returned is of type Fault.
func (mmu *MMU) Translate(address uint32, acc Access, pc uint32) (uint32, error) {
	switch mmu.MatchTT(address, acc) {
	case OkMatch:
		mmu.Stats.TTHits++
		return address, nil
	case NoRead, NoWrite:
		return 0, mmu.fault(DirectionViolation, address, acc, pc)
	}

	if !mmu.TC.Enabled {
		return address, nil
	}

	pageMask := mmu.TC.PageMask
	fc := acc.FunctionCode()

	if mmu.cacheable() {
		e, hit := mmu.ATC.lookup(address, fc, pageMask)
		if hit {
			kind, faulted := check(acc, e.Physical)

			// a write to a page that has not been modified must walk the
			// tables so that the modified bit is set
			if faulted || !acc.Write || e.Physical&atcModified == atcModified {
				mmu.Stats.ATCHits++
				if faulted {
					return 0, mmu.fault(kind, address, acc, pc)
				}
				return e.Physical&^pageMask | address&pageMask, nil
			}
		}
		mmu.Stats.ATCMisses++
	}

	mmu.Stats.Walks++
	w, err := mmu.walk(address, acc, true)
	if err != nil {
		f := err.(Fault)
		if f.Kind == Invalid && mmu.cacheable() {
			mmu.ATC.insert(address, fc, pageMask, 0, w.flags)
		}
		return 0, mmu.fault(f.Kind, address, acc, pc)
	}

	if mmu.cacheable() {
		mmu.ATC.insert(address, fc, pageMask, w.physical, w.flags)
	}

	if kind, ok := check(acc, w.flags); ok {
		return 0, mmu.fault(kind, address, acc, pc)
	}

	return w.physical, nil
}

func (mmu *MMU) fault(kind FaultKind, address uint32, acc Access, pc uint32) error {
	mmu.Stats.Faults++
	return Fault{Kind: kind, Address: address, Access: acc, PC: pc}
}

// Probe translates the address without changing the state of the MMU or of
// memory. The ATC is neither consulted nor updated and history bits are not
// set. The returned status is the value PTEST would place in the MMUSR.
func (mmu *MMU) Probe(address uint32, acc Access) (uint32, Status, error) {
	switch mmu.MatchTT(address, acc) {
	case OkMatch:
		return address, Status{Transparent: true}, nil
	case NoRead, NoWrite:
		return 0, Status{Transparent: true}, Fault{Kind: DirectionViolation, Address: address, Access: acc}
	}

	if !mmu.TC.Enabled {
		return address, Status{}, nil
	}

	w, err := mmu.walk(address, acc, false)
	if err != nil {
		return 0, w.status, err
	}
	if kind, ok := check(acc, w.flags); ok {
		return w.physical, w.status, Fault{Kind: kind, Address: address, Access: acc}
	}
	return w.physical, w.status, nil
}

// PTest searches the translation tables for the address and sets the MMUSR
// with the result. The physical address of the last descriptor fetched is
// returned.
func (mmu *MMU) PTest(address uint32, acc Access) (Status, uint32) {
	if mmu.MatchTT(address, acc) != NoMatch {
		mmu.mmusr = Status{Transparent: true}
		return mmu.mmusr, 0
	}
	w, _ := mmu.walk(address, acc, false)
	mmu.mmusr = w.status
	return mmu.mmusr, w.last
}

// FlushAll is the PFLUSHA instruction.
func (mmu *MMU) FlushAll() {
	mmu.ATC.FlushAll()
}

// FlushFC is the PFLUSH instruction with a function code and mask.
func (mmu *MMU) FlushFC(fc uint8, mask uint8) {
	mmu.ATC.FlushFC(fc, mask)
}

// FlushPage is the PFLUSH instruction with a function code, mask and
// effective address.
func (mmu *MMU) FlushPage(address uint32, fc uint8, mask uint8) {
	mmu.ATC.FlushPage(address, fc, mask, mmu.TC.PageMask)
}

func (mmu *MMU) String() string {
	s := strings.Builder{}
	s.WriteString(mmu.TC.String())
	s.WriteString("\n")
	for i := 0; i <= mmu.TC.LastTable; i++ {
		l := mmu.TC.Table[i]
		s.WriteString(fmt.Sprintf("  level %d: mask=%08x shift=%d\n", i, l.Mask, l.Shift))
	}
	s.WriteString(fmt.Sprintf("  page mask=%08x\n", mmu.TC.PageMask))
	s.WriteString(fmt.Sprintf("SRP=%s\n", mmu.SRP))
	s.WriteString(fmt.Sprintf("CRP=%s\n", mmu.CRP))
	s.WriteString(fmt.Sprintf("TT0=%s\n", mmu.TT[0]))
	s.WriteString(fmt.Sprintf("TT1=%s\n", mmu.TT[1]))
	s.WriteString(fmt.Sprintf("%s=%04x %s\n", mmu.mmusr.Label(), mmu.mmusr.Value(), mmu.mmusr))
	s.WriteString(fmt.Sprintf("ATC %d/%d used", mmu.ATC.Used(), ATCEntries))
	if !mmu.atcEnabled {
		s.WriteString(" (disabled)")
	}
	return s.String()
}
