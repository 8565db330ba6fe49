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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/cube030/hardware"
)

// State is an implementation of the Digest interface for snapshots of the
// machine. Each call to Update() chains the new hash with the previous one so
// the digest reflects the sequence of states and not just the latest.
type State struct {
	digest [sha1.Size]byte
	data   []byte
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

// Hash implements digest.Digest interface
func (dig State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *State) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Update the digest with a snapshot of the machine.
func (dig *State) Update(s *hardware.State) {
	// previous digest at the head of the data
	dig.data = append(dig.data[:0], dig.digest[:]...)
	dig.data = appendState(dig.data, s)
	dig.digest = sha1.Sum(dig.data)
}

// Snapshot returns the hash of a single snapshot without any chaining.
func Snapshot(s *hardware.State) string {
	return fmt.Sprintf("%x", sha1.Sum(appendState(nil, s)))
}

func appendState(b []byte, s *hardware.State) []byte {
	b = append(b, s.Mem.RAM...)
	b = append(b, s.Mem.ROM...)
	b = append(b, s.Mem.VRAM...)
	return append(b, s.MMU...)
}
