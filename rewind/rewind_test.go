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

package rewind_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/rewind"
	"github.com/jetsetilly/cube030/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	return hardware.NewMachine(p)
}

func TestGoto(t *testing.T) {
	vm := newMachine(t)
	r := rewind.NewRewind(vm)
	test.ExpectEquality(t, r.String(), "no entries")

	_, err := r.Save("before")
	test.ExpectSuccess(t, err)

	test.DemandSuccess(t, vm.Mem.Poke(memorymap.OriginRAM, 0xaa))
	vm.MMU.WriteTC(0x80c08c00)
	_, err = r.Save("after")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Len(), 2)

	e, err := r.Goto(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, e.Label, "before")

	v, err := vm.Mem.Peek(memorymap.OriginRAM)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, vm.MMU.TC.Enabled, false)

	_, err = r.Goto(1)
	test.ExpectSuccess(t, err)
	v, err = vm.Mem.Peek(memorymap.OriginRAM)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))
	test.ExpectEquality(t, vm.MMU.TC.Enabled, true)

	_, err = r.Goto(2)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rewind.NoEntry))
}

func TestHistoryLimit(t *testing.T) {
	vm := newMachine(t)
	r := rewind.NewRewind(vm)

	for i := 0; i < 40; i++ {
		_, err := r.Save(fmt.Sprintf("entry %d", i))
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, r.Len(), 32)

	// the earliest entries have been forgotten
	e, err := r.Get(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, e.Label, "entry 8")
	e, err = r.Get(31)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, e.Label, "entry 39")

	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
}
