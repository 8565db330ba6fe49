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

package tui

import (
	"strings"
	"testing"

	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/mmu"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	return hardware.NewMachine(p)
}

func TestRenderMap(t *testing.T) {
	m := newMachine(t)
	w := &test.CompareWriter{}
	renderMap(w, m)
	test.ExpectEquality(t, w.String(), m.Mem.Summary().String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "RAM bank 0"))
}

func TestRenderMMU(t *testing.T) {
	m := newMachine(t)
	w := &test.CompareWriter{}
	renderMMU(w, m)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), m.MMU.String()))
}

func TestRenderATC(t *testing.T) {
	m := newMachine(t)
	w := &test.CompareWriter{}
	renderATC(w, m)
	test.ExpectEquality(t, w.String(), "empty (22 entries)\n")

	// identity mapping with early termination at the root pointer
	m.MMU.WriteCRP(0x7fff0001_00000000)
	m.MMU.WriteTC(0x80c0aa00)
	_, err := m.Read(bus.Long, 0x04000000, mmu.Access{Data: true}, 0)
	test.ExpectSuccess(t, err)

	w.Clear()
	renderATC(w, m)
	test.ExpectEquality(t, w.String(), " 0 "+m.MMU.ATC.Entries[0].String()+"\n")
}

func TestNewTUI(t *testing.T) {
	tui := NewTUI(newMachine(t), 0)
	test.ExpectEquality(t, tui.refresh > 0, true)
}
