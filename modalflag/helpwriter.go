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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with mode information.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	// the flag package's output begins with a "Usage:" line, followed by a
	// description of each flag
	lines := strings.SplitN(hw.buffer.String(), "\n", 2)
	flags := ""
	if len(lines) > 1 {
		flags = lines[1]
	}

	if flags == "" && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			io.WriteString(output, "No help available\n")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		io.WriteString(output, "Usage:\n")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", path)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
