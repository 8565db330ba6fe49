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

package mmu

// TTResult is the result of matching an access against a transparent
// translation register.
type TTResult int

// List of valid TTResult values.
const (
	NoMatch TTResult = iota
	OkMatch

	// the address is in a write-only window but the access is a read
	NoRead

	// the address is in a read-only window but the access is a write
	NoWrite
)

func (r TTResult) String() string {
	switch r {
	case NoMatch:
		return "no match"
	case OkMatch:
		return "match"
	case NoRead:
		return "no read"
	case NoWrite:
		return "no write"
	}
	return "unknown"
}

// Match the address and access against the transparent translation
// register. The function code fields are only applied if fc is true.
func (tt TransparentTranslation) Match(address uint32, acc Access, fc bool) TTResult {
	if !tt.Enabled {
		return NoMatch
	}
	if (address^tt.addrBase)&tt.addrMask != 0 {
		return NoMatch
	}
	if fc && (acc.FunctionCode()^tt.FCBase)&tt.fcMask != 0 {
		return NoMatch
	}
	if !tt.ReadWriteMatch {
		return OkMatch
	}
	if tt.ReadWrite {
		if acc.Write {
			return NoWrite
		}
		return OkMatch
	}
	if !acc.Write {
		return NoRead
	}
	return OkMatch
}
