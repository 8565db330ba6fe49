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

package banks

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/logger"
)

// Device is implemented by peripherals attached to the IO bank. The address
// passed to the device is the unmodified physical address. Register
// semantics and side effects are entirely the business of the device.
type Device interface {
	bus.Reader
	bus.Writer
}

type attachment struct {
	label  string
	origin uint32
	memtop uint32
	dev    Device
}

// IO routes accesses in the I/O window to attached devices. Devices claim a
// range of offsets within the window so a device answers at every mirror of
// the window.
type IO struct {
	devices []attachment
}

// NewIO is the preferred method of initialisation for the IO type.
func NewIO() *IO {
	return &IO{}
}

// Sentinel error returned by IO.Attach().
const IOOverlap = "io: %s overlaps %s"

// Attach device to the range of offsets origin to memtop inclusive.
func (io *IO) Attach(label string, origin uint32, memtop uint32, dev Device) error {
	origin &= memorymap.SizeIO - 1
	memtop &= memorymap.SizeIO - 1
	if memtop < origin {
		return curated.Errorf("io: %s has an empty range", label)
	}
	for _, a := range io.devices {
		if origin <= a.memtop && memtop >= a.origin {
			return curated.Errorf(IOOverlap, label, a.label)
		}
	}
	io.devices = append(io.devices, attachment{
		label:  label,
		origin: origin,
		memtop: memtop,
		dev:    dev,
	})
	return nil
}

func (io *IO) String() string {
	s := strings.Builder{}
	for _, a := range io.devices {
		s.WriteString(fmt.Sprintf("$%05x - $%05x %s\n", a.origin, a.memtop, a.label))
	}
	return s.String()
}

func (io *IO) find(address uint32) Device {
	offset := address & (memorymap.SizeIO - 1)
	for _, a := range io.devices {
		if offset >= a.origin && offset <= a.memtop {
			return a.dev
		}
	}
	return nil
}

// Label implements the bus.Bank interface.
func (io *IO) Label() string {
	return "IO"
}

// Read implements the bus.Bank interface.
func (io *IO) Read(sz bus.Size, address uint32) (uint32, error) {
	if dev := io.find(address); dev != nil {
		return dev.Read(sz, address)
	}
	logger.Logf(logger.Allow, "io", "unclaimed %s read at $%08x", sz, address)
	return 0, nil
}

// Write implements the bus.Bank interface.
func (io *IO) Write(sz bus.Size, address uint32, data uint32) error {
	if dev := io.find(address); dev != nil {
		return dev.Write(sz, address, data)
	}
	logger.Logf(logger.Allow, "io", "unclaimed %s write of $%x at $%08x", sz, data, address)
	return nil
}

// Translate implements the bus.Bank interface.
func (io *IO) Translate(address uint32) ([]byte, error) {
	return nil, curated.Errorf(bus.NoHostMemory, io.Label(), address)
}

// Check implements the bus.Bank interface.
func (io *IO) Check(_ uint32, _ uint32) bool {
	return false
}
