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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/test"
)

func TestSlots(t *testing.T) {
	test.ExpectEquality(t, memorymap.Slot(0x00000000), 0)
	test.ExpectEquality(t, memorymap.Slot(0x0400ffff), 0x0400)
	test.ExpectEquality(t, memorymap.Slot(0xffffffff), 0xffff)

	test.ExpectEquality(t, memorymap.Slots(memorymap.SizeROM), 2)
	test.ExpectEquality(t, memorymap.Slots(memorymap.SizeMonoVRAM), 4)
	test.ExpectEquality(t, memorymap.Slots(1), 1)
	test.ExpectEquality(t, memorymap.Slots(0), 0)
	test.ExpectEquality(t, memorymap.Slots(memorymap.RAMBankSpan), 256)
}

func TestRAMBanks(t *testing.T) {
	test.ExpectEquality(t, memorymap.OriginRAMBank(0), uint32(0x04000000))
	test.ExpectEquality(t, memorymap.OriginRAMBank(3), uint32(0x07000000))

	// the overlay target must be inside the last RAM bank's span
	last := memorymap.OriginRAMBank(memorymap.RAMBanks - 1)
	test.ExpectSuccess(t, memorymap.OverlayTarget >= last)
	test.ExpectSuccess(t, memorymap.OverlayTarget+memorymap.OverlayTop <= last+memorymap.RAMBankSpan)
}
