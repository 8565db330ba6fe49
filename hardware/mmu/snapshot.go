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

import (
	"encoding/binary"

	"github.com/jetsetilly/cube030/curated"
)

// SnapshotVersion is the version of the data produced by MarshalBinary().
const SnapshotVersion = 1

// size of the snapshot in bytes: version, TC, SRP, CRP, TT0, TT1, MMUSR,
// ATC cursor and ATC entries
const snapshotSize = 1 + 4 + 8 + 8 + 4 + 4 + 2 + 1 + ATCEntries*8

// Sentinel errors returned by UnmarshalBinary().
const (
	SnapshotVersionError = "mmu: unsupported snapshot version (%d)"
	SnapshotSizeError    = "mmu: snapshot is %d bytes, expected %d"
)

// MarshalBinary implements the encoding.BinaryMarshaler interface. The raw
// register values and the contents of the ATC are included. Statistics are
// not.
func (mmu *MMU) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, snapshotSize)
	b = append(b, SnapshotVersion)
	b = binary.BigEndian.AppendUint32(b, mmu.TC.Raw)
	b = binary.BigEndian.AppendUint64(b, mmu.SRP.Raw)
	b = binary.BigEndian.AppendUint64(b, mmu.CRP.Raw)
	b = binary.BigEndian.AppendUint32(b, mmu.TT[0].Raw)
	b = binary.BigEndian.AppendUint32(b, mmu.TT[1].Raw)
	b = binary.BigEndian.AppendUint16(b, mmu.mmusr.Value())
	b = append(b, uint8(mmu.ATC.next))
	for _, e := range mmu.ATC.Entries {
		b = binary.BigEndian.AppendUint32(b, e.Logical)
		b = binary.BigEndian.AppendUint32(b, e.Physical)
	}
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// Registers are decoded without logging.
func (mmu *MMU) UnmarshalBinary(b []byte) error {
	if len(b) > 0 && b[0] != SnapshotVersion {
		return curated.Errorf(SnapshotVersionError, b[0])
	}
	if len(b) != snapshotSize {
		return curated.Errorf(SnapshotSizeError, len(b), snapshotSize)
	}

	b = b[1:]
	mmu.TC = DecodeTC(binary.BigEndian.Uint32(b))
	b = b[4:]
	mmu.SRP = DecodeRootPointer(binary.BigEndian.Uint64(b))
	b = b[8:]
	mmu.CRP = DecodeRootPointer(binary.BigEndian.Uint64(b))
	b = b[8:]
	mmu.TT[0] = DecodeTT(binary.BigEndian.Uint32(b))
	b = b[4:]
	mmu.TT[1] = DecodeTT(binary.BigEndian.Uint32(b))
	b = b[4:]
	mmu.mmusr.FromValue(binary.BigEndian.Uint16(b))
	b = b[2:]
	mmu.ATC.next = int(b[0]) % ATCEntries
	b = b[1:]
	for i := range mmu.ATC.Entries {
		mmu.ATC.Entries[i].Logical = binary.BigEndian.Uint32(b)
		mmu.ATC.Entries[i].Physical = binary.BigEndian.Uint32(b[4:])
		b = b[8:]
	}
	return nil
}
