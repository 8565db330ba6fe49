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

package easyterm

import (
	"syscall"
)

// SuspendProcess manually suspends the current process. This is useful if
// terminal is in cbreak mode and the terminal is given the suspend key.
func SuspendProcess() {
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
