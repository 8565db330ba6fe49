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
)

// Video is a framebuffer. It behaves exactly like RAM but is sized and
// placed according to the type of display fitted.
type Video struct {
	store
}

// NewVideo is the preferred method of initialisation for the Video type.
// The size must be a power of two.
func NewVideo(label string, origin uint32, size uint32) *Video {
	return &Video{store: newStore(label, origin, make([]byte, size))}
}

func (vid *Video) String() string {
	return fmt.Sprintf("%s: %dKiB at $%08x", vid.label, len(vid.data)>>10, vid.origin)
}

// Reset contents of framebuffer.
func (vid *Video) Reset() {
	clear(vid.data)
}
