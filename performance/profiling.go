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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/cube030/curated"
)

// ProfileCPU runs the function with the CPU profiler writing to outFile.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to outFile.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
