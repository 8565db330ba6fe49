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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/cube030/digest"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/test"
)

func snapshot(t *testing.T, vm *hardware.Machine) *hardware.State {
	t.Helper()
	s, err := vm.Snapshot()
	test.DemandSuccess(t, err)
	return s
}

func TestSnapshotDigest(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	vm := hardware.NewMachine(p)

	a := digest.Snapshot(snapshot(t, vm))
	test.ExpectEquality(t, a, digest.Snapshot(snapshot(t, vm)))

	test.DemandSuccess(t, vm.Mem.Poke(memorymap.OriginRAM, 0x55))
	b := digest.Snapshot(snapshot(t, vm))
	test.ExpectSuccess(t, a != b)

	// the MMU is part of the digest
	vm.MMU.WriteTC(0x80c08c00)
	test.ExpectSuccess(t, b != digest.Snapshot(snapshot(t, vm)))
}

func TestChainedDigest(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	vm := hardware.NewMachine(p)

	var dig digest.Digest = digest.NewState()
	zero := dig.Hash()

	s := snapshot(t, vm)
	st := dig.(*digest.State)
	st.Update(s)
	first := dig.Hash()
	test.ExpectSuccess(t, first != zero)

	// the same state twice produces a different hash because of the chaining
	st.Update(s)
	test.ExpectSuccess(t, dig.Hash() != first)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	st.Update(s)
	test.ExpectEquality(t, dig.Hash(), first)
}
