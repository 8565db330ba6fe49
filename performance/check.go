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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/hardware/mmu"
)

// identity translation by early termination at the root pointer. 4KiB pages
// with a table layout of 8+12 bits so that the TC is valid
const (
	checkCRP = 0x7fff0001_00000000
	checkTC  = 0x80c08c00
)

// the size of a page with the checkTC setting
const checkPage = 0x1000

// Check the speed of logical memory accesses for the duration. With profile
// set, CPU and memory profiles are written to the current directory.
func Check(output io.Writer, vm *hardware.Machine, duration time.Duration, profile bool) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	size := vm.Prefs.RAMBankSize(0)
	if size == 0 {
		return curated.Errorf("performance: RAM bank 0 is not populated")
	}

	vm.Reset()
	vm.MMU.WriteCRP(checkCRP)
	vm.MMU.WriteTC(checkTC)

	acc := mmu.Access{Supervisor: true, Data: true}

	var accesses uint64

	run := func() error {
		timesUp := time.After(duration)
		address := uint32(memorymap.OriginRAM)
		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			// a burst of accesses within a page and then on to the next page
			for i := uint32(0); i < checkPage; i += 4 {
				if _, err := vm.Read(bus.Long, address+i, acc, 0); err != nil {
					return curated.Errorf("performance: %v", err)
				}
			}
			accesses += checkPage / 4

			address += checkPage
			if address >= memorymap.OriginRAM+size {
				address = memorymap.OriginRAM
			}
		}
	}

	var err error
	if profile {
		err = ProfileCPU("cpu.profile", run)
	} else {
		err = run()
	}
	if err != nil {
		return err
	}

	rate := float64(accesses) / duration.Seconds()
	fmt.Fprintf(output, "%.0f accesses/sec (%d accesses in %.2f seconds)\n", rate, accesses, duration.Seconds())
	fmt.Fprintf(output, "%s\n", vm.MMU.Stats)

	if profile {
		return ProfileMem("mem.profile")
	}

	return nil
}
