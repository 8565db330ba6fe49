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

package banks_test

import (
	"testing"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/banks"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/test"
)

func TestRAM(t *testing.T) {
	ram := banks.NewRAM("RAM", memorymap.OriginRAM, make([]byte, 0x1000))

	test.ExpectSuccess(t, ram.Write(bus.Long, memorymap.OriginRAM+0x10, 0x01020304))
	v, err := ram.Read(bus.Long, memorymap.OriginRAM+0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01020304))

	// big endian
	v, _ = ram.Read(bus.Byte, memorymap.OriginRAM+0x10)
	test.ExpectEquality(t, v, uint32(0x01))
	v, _ = ram.Read(bus.Word, memorymap.OriginRAM+0x12)
	test.ExpectEquality(t, v, uint32(0x0304))

	// the address is masked against the size of the bank
	v, _ = ram.Read(bus.Long, memorymap.OriginRAM+0x1010)
	test.ExpectEquality(t, v, uint32(0x01020304))

	m, err := ram.Translate(memorymap.OriginRAM + 0x11)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m[0], uint8(0x02))

	test.ExpectEquality(t, ram.Check(memorymap.OriginRAM+0xffc, 4), true)
	test.ExpectEquality(t, ram.Check(memorymap.OriginRAM+0xffd, 4), false)

	ram.Reset()
	v, _ = ram.Read(bus.Long, memorymap.OriginRAM+0x10)
	test.ExpectEquality(t, v, uint32(0))
}

func TestSharedStorage(t *testing.T) {
	data := make([]byte, 0x100)
	a := banks.NewRAM("A", 0, data)
	b := banks.NewRAM("B", 0, data)
	test.ExpectSuccess(t, a.Write(bus.Word, 0x20, 0xbeef))
	v, _ := b.Read(bus.Word, 0x20)
	test.ExpectEquality(t, v, uint32(0xbeef))

	// independent storage is never aliased
	c := banks.NewVideo("C", 0, 0x100)
	v, _ = c.Read(bus.Word, 0x20)
	test.ExpectEquality(t, v, uint32(0))
}

type constReader uint32

func (r constReader) Read(_ bus.Size, address uint32) (uint32, error) {
	return uint32(r) ^ address, nil
}

func TestROM(t *testing.T) {
	rom := banks.NewROM()
	test.ExpectFailure(t, rom.Load(nil))
	test.ExpectFailure(t, rom.Load(make([]byte, memorymap.SizeROM+1)))
	test.ExpectSuccess(t, rom.Load([]byte{0xde, 0xad, 0xbe, 0xef}))

	// image is repeated
	v, err := rom.Read(bus.Long, memorymap.OriginROM+0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	// writes are ignored without error
	test.ExpectSuccess(t, rom.Write(bus.Long, memorymap.OriginROM+0x1000, 0))
	v, _ = rom.Read(bus.Long, memorymap.OriginROM+0x1000)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	// boot overlay
	active := false
	rom.SetOverlay(func() bool { return active }, constReader(0), nil)
	v, _ = rom.Read(bus.Long, 0x100)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))
	active = true
	v, _ = rom.Read(bus.Long, 0x100)
	test.ExpectEquality(t, v, uint32(memorymap.OverlayTarget+0x100))

	// the overlay only covers the bottom of the boot alias
	v, _ = rom.Read(bus.Long, memorymap.OverlayTop)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))
	v, _ = rom.Read(bus.Long, memorymap.OriginROM+0x100)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	// a resolved target replaces the fixed target
	rom.SetOverlay(func() bool { return active }, constReader(0), func() uint32 { return 0x073fe000 })
	v, _ = rom.Read(bus.Long, 0x100)
	test.ExpectEquality(t, v, uint32(0x073fe100))
}

func TestEmpty(t *testing.T) {
	const size = 0x800000
	origin := memorymap.OriginRAMBank(0)
	ram := banks.NewRAM("RAM", origin, make([]byte, size))

	quirk := true
	emp := banks.NewEmpty("empty", ram, func() bool { return quirk })

	_, err := emp.Read(bus.Byte, origin+size)
	test.ExpectEquality(t, curated.Is(err, bus.BusError), true)
	_, err = emp.Read(bus.Word, origin+size)
	test.ExpectEquality(t, curated.Is(err, bus.BusError), true)
	v, err := emp.Read(bus.Long, origin+size+4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, origin+size+4)

	test.ExpectFailure(t, emp.Write(bus.Byte, origin+size, 1))
	test.ExpectFailure(t, emp.Write(bus.Word, origin+size, 1))

	// long write lands in the populated part of the bank
	test.ExpectSuccess(t, emp.Write(bus.Long, origin+size+0x1000, 0x12345678))
	v, _ = ram.Read(bus.Long, origin+0x1000)
	test.ExpectEquality(t, v, uint32(0x12345678))

	_, err = emp.Translate(origin + size)
	test.ExpectEquality(t, curated.Is(err, bus.NoHostMemory), true)
	test.ExpectEquality(t, emp.Check(origin+size, 1), false)

	// without the quirk every access faults
	quirk = false
	_, err = emp.Read(bus.Long, origin+size)
	test.ExpectEquality(t, curated.Is(err, bus.BusError), true)
	test.ExpectFailure(t, emp.Write(bus.Long, origin+size+0x1000, 0))

	// unpopulated bank
	quirk = true
	emp = banks.NewEmpty("empty", nil, nil)
	test.ExpectFailure(t, emp.Write(bus.Long, origin, 0))
}

func TestBusError(t *testing.T) {
	var b banks.BusError
	for _, sz := range []bus.Size{bus.Byte, bus.Word, bus.Long} {
		v, err := b.Read(sz, 0x10000000)
		test.ExpectEquality(t, curated.Is(err, bus.BusError), true)
		test.ExpectEquality(t, v, uint32(0))
		test.ExpectEquality(t, curated.Is(b.Write(sz, 0x10000000, 0), bus.BusError), true)
	}
	test.ExpectEquality(t, b.Check(0, 1), false)
}

type register struct {
	last uint32
	val  uint32
}

func (r *register) Read(_ bus.Size, address uint32) (uint32, error) {
	r.last = address
	return r.val, nil
}

func (r *register) Write(_ bus.Size, address uint32, data uint32) error {
	r.last = address
	r.val = data
	return nil
}

func TestIO(t *testing.T) {
	io := banks.NewIO()
	scsi := &register{}
	test.ExpectSuccess(t, io.Attach("scsi", 0x14000, 0x1401f, scsi))
	test.ExpectFailure(t, io.Attach("dma", 0x14010, 0x14100, &register{}))
	test.ExpectFailure(t, io.Attach("bad", 0x100, 0x0ff, &register{}))

	test.ExpectSuccess(t, io.Write(bus.Byte, memorymap.OriginIO+0x14004, 0x42))
	test.ExpectEquality(t, scsi.last, uint32(memorymap.OriginIO+0x14004))

	// device answers at the mirror
	v, err := io.Read(bus.Byte, memorymap.MirrorIO+0x14004)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x42))
	test.ExpectEquality(t, scsi.last, uint32(memorymap.MirrorIO+0x14004))

	// unclaimed accesses read as zero
	v, err = io.Read(bus.Long, memorymap.OriginIO)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectSuccess(t, io.Write(bus.Long, memorymap.OriginIO, 1))
}
