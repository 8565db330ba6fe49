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

package mmu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/cube030/hardware/memory/banks"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/mmu"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/logger"
	"github.com/jetsetilly/cube030/test"
)

// 4KiB pages, TIA=7 TIB=6 TIC=7
const tc3Level = 0x80c07670

// 4KiB pages, TIA=10 TIB=10
const tc2Level = 0x80c0aa00

// root pointer for a short format table at $1000 with no effective limit
const crpShort = 0x7fff0002_00001000

var (
	userRead  = mmu.Access{Data: true}
	userWrite = mmu.Access{Data: true, Write: true}
	superRead = mmu.Access{Supervisor: true, Data: true}
)

type harness struct {
	t     *testing.T
	prefs *preferences.Preferences
	ram   *banks.RAM
	mmu   *mmu.MMU
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	h := &harness{
		t:     t,
		prefs: p,
		ram:   banks.NewRAM("RAM", 0, make([]byte, 0x100000)),
	}
	h.mmu = mmu.NewMMU(p, h.ram)
	return h
}

func (h *harness) poke(address uint32, v uint32) {
	h.t.Helper()
	test.DemandSuccess(h.t, h.ram.Write(bus.Long, address, v))
}

func (h *harness) peek(address uint32) uint32 {
	h.t.Helper()
	v, err := h.ram.Read(bus.Long, address)
	test.DemandSuccess(h.t, err)
	return v
}

func (h *harness) expectFault(err error, kind mmu.FaultKind) {
	h.t.Helper()
	f, ok := mmu.IsFault(err)
	if !ok {
		h.t.Errorf("expected %s fault but got %v", kind, err)
		return
	}
	test.ExpectEquality(h.t, f.Kind, kind)
}

// three level tables for logical address $02483abc:
//
//	table A at $1000, index 1
//	table B at $2000, index 9
//	table C at $3000, index 3
//	page at $45000
func (h *harness) threeLevel() {
	h.mmu.WriteCRP(crpShort)
	h.poke(0x1004, 0x00002000|mmu.DTValid4)
	h.poke(0x2024, 0x00003000|mmu.DTValid4)
	h.poke(0x300c, 0x00045000|mmu.DTPage)
	h.mmu.WriteTC(tc3Level)
}

func TestDisabled(t *testing.T) {
	h := newHarness(t)
	v, err := h.mmu.Translate(0x12345678, userWrite, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345678))
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(0))
}

func TestWalk(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()

	v, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00045abc))
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(1))

	// used bits are set on every descriptor visited
	test.ExpectEquality(t, h.peek(0x1004), uint32(0x0000200a))
	test.ExpectEquality(t, h.peek(0x2024), uint32(0x0000300a))
	test.ExpectEquality(t, h.peek(0x300c), uint32(0x00045009))

	// the modified bit is set by a write
	v, err = h.mmu.Translate(0x02483000, userWrite, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00045000))
	test.ExpectEquality(t, h.peek(0x300c), uint32(0x00045019))

	// unmapped part of table A
	_, err = h.mmu.Translate(0x04000000, userRead, 0)
	h.expectFault(err, mmu.Invalid)
}

func TestDeterminism(t *testing.T) {
	h := newHarness(t)
	h.mmu.SetATCEnabled(false)
	h.threeLevel()

	for _, a := range []uint32{0x02483abc, 0x02483fff, 0x04000000} {
		v1, err1 := h.mmu.Translate(a, userRead, 0)
		v2, err2 := h.mmu.Translate(a, userRead, 0)
		test.ExpectEquality(t, v1, v2)
		test.ExpectEquality(t, err1, err2)
	}
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(6))
}

func TestEarlyTermination(t *testing.T) {
	h := newHarness(t)
	h.mmu.WriteCRP(crpShort)
	h.poke(0x100c, 0x00400000|mmu.DTPage)
	h.mmu.WriteTC(tc2Level)

	// the index bits of level 1 are zero
	v, err := h.mmu.Translate(0x00c00abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00400000|0x00000abc))

	// the unused index bits of level 1 become part of the page offset
	v, err = h.mmu.Translate(0x00c05abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00405abc))

	// level 1 is never reached
	_, sr, err := h.mmu.Probe(0x00c00abc, userRead)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sr.Levels, 1)
}

func TestRootPage(t *testing.T) {
	h := newHarness(t)
	h.mmu.WriteCRP(0x7fff0001_10000000)
	h.mmu.WriteTC(tc2Level)
	v, err := h.mmu.Translate(0x00012345, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x10012345))

	h.mmu.WriteCRP(0)
	_, err = h.mmu.Translate(0x00012345, userRead, 0)
	h.expectFault(err, mmu.Invalid)
}

func TestIndirect(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()
	h.poke(0x300c, 0x00005000|mmu.DTValid4)
	h.poke(0x5000, 0x00077000|mmu.DTPage)

	v, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00077abc))

	// the indirect descriptor is unchanged
	test.ExpectEquality(t, h.peek(0x300c), uint32(0x00005002))
	test.ExpectEquality(t, h.peek(0x5000), uint32(0x00077009))

	// indirect descriptors must point to a page descriptor
	h.mmu.FlushAll()
	h.poke(0x5000, 0x00077000|mmu.DTValid4)
	_, err = h.mmu.Translate(0x02483abc, userRead, 0)
	h.expectFault(err, mmu.Invalid)
}

func TestFunctionCodeLookup(t *testing.T) {
	h := newHarness(t)

	// function code table at $1000. user data points to a two level table
	// at $2000
	h.mmu.WriteCRP(crpShort)
	h.poke(0x1004, 0x00002000|mmu.DTValid4)
	h.poke(0x2000, 0x00006000|mmu.DTValid4)
	h.poke(0x6000, 0x00088000|mmu.DTPage)
	h.mmu.WriteTC(tc2Level | 0x01000000)

	v, err := h.mmu.Translate(0x00000123, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00088123))

	// user program space is not mapped
	_, err = h.mmu.Translate(0x00000123, mmu.Access{}, 0)
	h.expectFault(err, mmu.Invalid)
}

func TestSeparateRoots(t *testing.T) {
	h := newHarness(t)
	h.mmu.WriteCRP(0x7fff0001_00100000)
	h.mmu.WriteSRP(0x7fff0001_00200000)
	h.mmu.WriteTC(tc2Level | 0x02000000)

	v, err := h.mmu.Translate(0x1000, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00101000))
	v, err = h.mmu.Translate(0x1000, superRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00201000))
}

func TestLongDescriptors(t *testing.T) {
	h := newHarness(t)
	h.mmu.WriteCRP(0x7fff0003_00001000)
	h.mmu.WriteTC(tc2Level)

	// supervisor only table at index 3
	h.poke(0x1018, 0x7fff0100|mmu.DTValid4)
	h.poke(0x101c, 0x00002000)
	h.poke(0x2000, 0x00099000|mmu.DTPage)

	v, err := h.mmu.Translate(0x00c00010, superRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00099010))

	_, err = h.mmu.Translate(0x00c00010, userRead, 0)
	h.expectFault(err, mmu.SupervisorViolation)

	_, sr, err := h.mmu.Probe(0x00c00010, userRead)
	h.expectFault(err, mmu.SupervisorViolation)
	test.ExpectEquality(t, sr.Supervisor, true)
}

func TestWriteProtect(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()
	h.poke(0x2024, 0x00003000|0x04|mmu.DTValid4)

	_, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	_, err = h.mmu.Translate(0x02483abc, userWrite, 0)
	h.expectFault(err, mmu.WriteProtect)

	// the page was not modified
	test.ExpectEquality(t, h.peek(0x300c)&0x10, uint32(0))
}

func TestLimit(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()

	// upper limit of zero on table A
	h.mmu.WriteCRP(0x00000002_00001000)
	v, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00045abc))

	test.ExpectSuccess(t, h.prefs.Set("mmu.enforcelimit", true))
	h.mmu.FlushAll()
	_, err = h.mmu.Translate(0x02483abc, userRead, 0)
	h.expectFault(err, mmu.LimitViolation)

	// lower limit of two on table A
	h.mmu.WriteCRP(0x80020002_00001000)
	_, err = h.mmu.Translate(0x02483abc, userRead, 0)
	h.expectFault(err, mmu.LimitViolation)
	sr, _ := h.mmu.PTest(0x02483abc, userRead)
	test.ExpectEquality(t, sr.Limit, true)
}

func TestTransparentPriority(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()
	h.mmu.WriteTT0(0xff008307)
	h.mmu.WriteTT1(0x00ff8000)

	// both registers match. TT0 wins
	_, err := h.mmu.Translate(0xff001234, userWrite, 0)
	h.expectFault(err, mmu.DirectionViolation)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(0))

	v, err := h.mmu.Translate(0xff001234, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xff001234))

	// only TT1 matches
	v, err = h.mmu.Translate(0x02483abc, userWrite, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x02483abc))
	test.ExpectEquality(t, h.mmu.Stats.TTHits, uint64(2))
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(0))

	// TT registers apply with translation disabled
	h.mmu.WriteTC(0)
	_, err = h.mmu.Translate(0xff001234, userWrite, 0)
	h.expectFault(err, mmu.DirectionViolation)

	sr, _ := h.mmu.PTest(0xff001234, userRead)
	test.ExpectEquality(t, sr.Transparent, true)
}

func TestTTFunctionCodePreference(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()
	h.mmu.WriteTT0(0x02008050)

	v, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x02483abc))

	test.ExpectSuccess(t, h.prefs.Set("mmu.ttfcmatch", true))
	v, err = h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00045abc))
}

func TestATCTransparency(t *testing.T) {
	with := newHarness(t)
	with.threeLevel()
	without := newHarness(t)
	without.threeLevel()
	without.mmu.SetATCEnabled(false)

	const n = 10
	for i := 0; i < n; i++ {
		a := uint32(0x02483000 + i*0x100)
		v1, err1 := with.mmu.Translate(a, userRead, 0)
		v2, err2 := without.mmu.Translate(a, userRead, 0)
		test.ExpectSuccess(t, err1)
		test.ExpectEquality(t, v1, v2)
		test.ExpectEquality(t, err1, err2)
	}
	test.ExpectEquality(t, with.mmu.Stats.Walks, uint64(1))
	test.ExpectEquality(t, with.mmu.Stats.ATCHits, uint64(n-1))
	test.ExpectEquality(t, without.mmu.Stats.Walks, uint64(n))

	// faults are the same too
	for _, acc := range []mmu.Access{userRead, userWrite} {
		_, err1 := with.mmu.Translate(0x04000000, acc, 0)
		_, err2 := without.mmu.Translate(0x04000000, acc, 0)
		test.ExpectEquality(t, err1, err2)
	}
}

func TestATCModified(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()

	_, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(1))

	// first write to the page requires a walk to set the modified bit
	_, err = h.mmu.Translate(0x02483abc, userWrite, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(2))

	_, err = h.mmu.Translate(0x02483abc, userWrite, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(2))
	test.ExpectEquality(t, h.mmu.ATC.Used(), 1)
}

func TestFlush(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()
	h.poke(0x3010, 0x00046000|mmu.DTPage)

	_, err := h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	_, err = h.mmu.Translate(0x02483abc, mmu.Access{}, 0)
	test.ExpectSuccess(t, err)
	_, err = h.mmu.Translate(0x02484abc, mmu.Access{}, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.mmu.ATC.Used(), 3)

	h.mmu.FlushFC(mmu.FCUserData, 0x07)
	test.ExpectEquality(t, h.mmu.ATC.Used(), 2)

	h.mmu.FlushPage(0x02484000, mmu.FCUserProgram, 0x07)
	test.ExpectEquality(t, h.mmu.ATC.Used(), 1)

	// a mask of zero matches every function code
	h.mmu.FlushPage(0x02483000, mmu.FCSupervisorData, 0)
	test.ExpectEquality(t, h.mmu.ATC.Used(), 0)

	_, err = h.mmu.Translate(0x02483abc, userRead, 0)
	test.ExpectSuccess(t, err)
	h.mmu.FlushAll()
	test.ExpectEquality(t, h.mmu.ATC.Used(), 0)
}

func TestATCReplacement(t *testing.T) {
	h := newHarness(t)
	h.mmu.WriteCRP(0x7fff0001_00000000)
	h.mmu.WriteTC(tc2Level)

	for i := 0; i <= mmu.ATCEntries; i++ {
		_, err := h.mmu.Translate(uint32(i)<<12, userRead, 0)
		test.ExpectSuccess(t, err)
	}
	test.ExpectEquality(t, h.mmu.ATC.Used(), mmu.ATCEntries)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(mmu.ATCEntries+1))

	// the first page was replaced
	_, err := h.mmu.Translate(0, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(mmu.ATCEntries+2))

	// the most recent page is still cached
	_, err = h.mmu.Translate(uint32(mmu.ATCEntries)<<12, userRead, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.mmu.Stats.Walks, uint64(mmu.ATCEntries+2))
}

func TestPTest(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()

	sr, last := h.mmu.PTest(0x02483abc, userRead)
	test.ExpectEquality(t, sr.Levels, 3)
	test.ExpectEquality(t, sr.Invalid, false)
	test.ExpectEquality(t, last, uint32(0x300c))
	test.ExpectEquality(t, h.mmu.MMUSR(), sr)

	// ptest does not change history bits or the ATC
	test.ExpectEquality(t, h.peek(0x300c), uint32(0x00045001))
	test.ExpectEquality(t, h.mmu.ATC.Used(), 0)

	sr, _ = h.mmu.PTest(0x04000000, userRead)
	test.ExpectEquality(t, sr.Invalid, true)
	test.ExpectEquality(t, sr.Levels, 1)

	h.mmu.WriteMMUSR(0)
	test.ExpectEquality(t, h.mmu.MMUSR().Value(), uint16(0))
}

func TestBusErrorDuringWalk(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	m := mmu.NewMMU(p, banks.BusError{})
	m.WriteCRP(crpShort)
	m.WriteTC(tc3Level)
	_, err = m.Translate(0x02483abc, userRead, 0)
	f, ok := mmu.IsFault(err)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, f.Kind, mmu.BusError)
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t)
	h.threeLevel()
	h.mmu.WriteTT1(0x00ff8107)
	_, err := h.mmu.Translate(0x02483abc, userWrite, 0)
	test.ExpectSuccess(t, err)
	h.mmu.PTest(0x02483abc, userRead)

	b, err := h.mmu.MarshalBinary()
	test.ExpectSuccess(t, err)

	n := newHarness(t)
	test.ExpectSuccess(t, n.mmu.UnmarshalBinary(b))
	test.ExpectEquality(t, n.mmu.TC, h.mmu.TC)
	test.ExpectEquality(t, n.mmu.SRP, h.mmu.SRP)
	test.ExpectEquality(t, n.mmu.CRP, h.mmu.CRP)
	test.ExpectEquality(t, n.mmu.TT, h.mmu.TT)
	test.ExpectEquality(t, n.mmu.MMUSR(), h.mmu.MMUSR())
	test.ExpectEquality(t, n.mmu.ATC.Entries, h.mmu.ATC.Entries)

	b[0] = 2
	test.ExpectFailure(t, n.mmu.UnmarshalBinary(b))
	test.ExpectFailure(t, n.mmu.UnmarshalBinary(b[:10]))
}

func TestConfigurationWarning(t *testing.T) {
	h := newHarness(t)

	// the warning is logged even though translation is disabled
	logger.Clear()
	h.mmu.WriteTC(0x0080ccc4)
	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "mmu: configuration warning: 2 table levels do not fit in the address and are ignored\n"))

	logger.Clear()
	h.mmu.WriteTC(tc2Level)
	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, strings.Contains(w.String(), "configuration warning"), false)
}
