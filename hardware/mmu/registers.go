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
	"fmt"
	"strings"
)

// Bit layout of the translation control register.
const (
	tcEnable        = 0x80000000
	tcSupervisorRP  = 0x02000000
	tcFunctionCodes = 0x01000000
	tcPageShift     = 20
	tcInitialShift  = 16
	tcFieldMask     = 0x0f
)

// the index width fields of the TC register, from TIA to TID
var tcTableShift = [4]int{12, 8, 4, 0}

// Level is the decoded form of one table level of the TC register.
type Level struct {
	Width uint8
	Shift uint8
	Mask  uint32
}

// TranslationControl is the decoded form of the TC register.
type TranslationControl struct {
	Raw uint32

	Enabled bool

	// the SRP is used for supervisor accesses. if false the CRP is used for
	// all accesses
	SupervisorRoot bool

	// the first table is indexed by the function code of the access
	FunctionCodeLookup bool

	PageBits     uint8
	PageMask     uint32
	InitialShift uint8

	Table [4]Level

	// index of the last table level in use. if the width of the first level
	// is zero LastTable is zero and the first level has an empty mask
	LastTable int

	// number of table levels with a non-zero width that did not fit in the
	// address after the initial shift and the preceding levels
	Truncated int
}

// DecodeTC decodes the raw value of the translation control register.
func DecodeTC(raw uint32) TranslationControl {
	tc := TranslationControl{
		Raw:                raw,
		Enabled:            raw&tcEnable == tcEnable,
		SupervisorRoot:     raw&tcSupervisorRP == tcSupervisorRP,
		FunctionCodeLookup: raw&tcFunctionCodes == tcFunctionCodes,
		PageBits:           uint8(raw>>tcPageShift) & tcFieldMask,
		InitialShift:       uint8(raw>>tcInitialShift) & tcFieldMask,
	}

	tc.PageMask = uint32(1)<<tc.PageBits - 1

	// table levels are allocated from the most significant end of the
	// address. the first level with a width of zero ends the list
	shift := 32 - int(tc.InitialShift)
	for i, s := range tcTableShift {
		w := uint8(raw>>s) & tcFieldMask
		if w == 0 {
			break
		}
		shift -= int(w)
		if shift < 0 {
			// the remaining levels are dropped. translation carries on with
			// the levels that fit
			for _, ts := range tcTableShift[i:] {
				if uint8(raw>>ts)&tcFieldMask == 0 {
					break
				}
				tc.Truncated++
			}
			break
		}
		tc.Table[i] = Level{
			Width: w,
			Shift: uint8(shift),
			Mask:  (uint32(1)<<w - 1) << shift,
		}
		tc.LastTable = i
	}

	return tc
}

// Width returns the number of address bits accounted for by the page size,
// initial shift and table index fields.
func (tc TranslationControl) Width() int {
	w := int(tc.PageBits) + int(tc.InitialShift)
	for i := 0; i <= tc.LastTable; i++ {
		w += int(tc.Table[i].Width)
	}
	return w
}

// Problems returns a description of every configuration error in the TC
// register. The real hardware would raise an MMU configuration exception
// for these when the register is enabled. The emulation carries on with the
// decoded values.
func (tc TranslationControl) Problems() []string {
	var p []string
	if tc.PageBits < 8 {
		p = append(p, fmt.Sprintf("page size of %d bits is too small", tc.PageBits))
	}
	if tc.Truncated > 0 {
		p = append(p, fmt.Sprintf("%d table levels do not fit in the address and are ignored", tc.Truncated))
	}
	if w := tc.Width(); w != 32 {
		p = append(p, fmt.Sprintf("fields account for %d bits and not 32", w))
	}
	return p
}

func (tc TranslationControl) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("TC=%08x", tc.Raw))
	if !tc.Enabled {
		s.WriteString(" disabled")
	}
	if tc.SupervisorRoot {
		s.WriteString(" SRE")
	}
	if tc.FunctionCodeLookup {
		s.WriteString(" FCL")
	}
	s.WriteString(fmt.Sprintf(" PS=%d IS=%d", tc.PageBits, tc.InitialShift))
	for i := 0; i <= tc.LastTable; i++ {
		s.WriteString(fmt.Sprintf(" T%c=%d", 'A'+i, tc.Table[i].Width))
	}
	return s.String()
}

// Descriptor types. The same two bit field is used by root pointers and by
// every kind of descriptor.
const (
	DTInvalid = 0
	DTPage    = 1
	DTValid4  = 2
	DTValid8  = 3
)

// RootPointer is the decoded form of the SRP or CRP register.
type RootPointer struct {
	Raw uint64

	// the index into the first table must not be less than Limit if
	// LowerLimit is true, and must not be greater than Limit otherwise
	LowerLimit bool
	Limit      uint16

	DescriptorType uint8
	TableAddress   uint32
}

// Bit layout of the upper long word of a root pointer and of a long format
// descriptor.
const (
	limitLower = 0x80000000
	limitShift = 16
	limitMask  = 0x7fff
	dtMask     = 0x03
	addrMask   = 0xfffffff0
)

// DecodeRootPointer decodes the raw value of a root pointer register.
func DecodeRootPointer(raw uint64) RootPointer {
	hi := uint32(raw >> 32)
	return RootPointer{
		Raw:            raw,
		LowerLimit:     hi&limitLower == limitLower,
		Limit:          uint16(hi>>limitShift) & limitMask,
		DescriptorType: uint8(hi & dtMask),
		TableAddress:   uint32(raw) & addrMask,
	}
}

func (rp RootPointer) String() string {
	lu := "upper"
	if rp.LowerLimit {
		lu = "lower"
	}
	return fmt.Sprintf("%016x table=%08x DT=%d %s limit=%04x", rp.Raw, rp.TableAddress, rp.DescriptorType, lu, rp.Limit)
}

// Bit layout of the transparent translation registers.
const (
	ttBaseShift     = 24
	ttMaskShift     = 16
	ttEnable        = 0x8000
	ttCacheInhibit  = 0x0400
	ttReadWrite     = 0x0200
	ttReadWriteMask = 0x0100
	ttFCBaseShift   = 4
	ttFCMask        = 0x07
)

// TransparentTranslation is the decoded form of the TT0 or TT1 register.
type TransparentTranslation struct {
	Raw uint32

	Enabled      bool
	CacheInhibit bool

	// when ReadWriteMatch is true the window applies to reads only
	// (ReadWrite is true) or to writes only (ReadWrite is false)
	ReadWrite      bool
	ReadWriteMatch bool

	AddressBase uint8
	AddressMask uint8
	FCBase      uint8
	FCMask      uint8

	// address bits that must equal the base for a match
	addrMask uint32
	addrBase uint32

	// function code bits that must equal the base for a match
	fcMask uint8
}

// DecodeTT decodes the raw value of a transparent translation register.
func DecodeTT(raw uint32) TransparentTranslation {
	tt := TransparentTranslation{
		Raw:            raw,
		Enabled:        raw&ttEnable == ttEnable,
		CacheInhibit:   raw&ttCacheInhibit == ttCacheInhibit,
		ReadWrite:      raw&ttReadWrite == ttReadWrite,
		ReadWriteMatch: raw&ttReadWriteMask == ttReadWriteMask,
		AddressBase:    uint8(raw >> ttBaseShift),
		AddressMask:    uint8(raw >> ttMaskShift),
		FCBase:         uint8(raw>>ttFCBaseShift) & ttFCMask,
		FCMask:         uint8(raw) & ttFCMask,
	}
	tt.addrMask = ^(uint32(tt.AddressMask) << ttBaseShift) & 0xff000000
	tt.addrBase = uint32(tt.AddressBase) << ttBaseShift
	tt.fcMask = ^tt.FCMask & ttFCMask
	return tt
}

func (tt TransparentTranslation) String() string {
	if !tt.Enabled {
		return fmt.Sprintf("%08x disabled", tt.Raw)
	}
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08x base=%02x mask=%02x fc=%d/%d", tt.Raw, tt.AddressBase, tt.AddressMask, tt.FCBase, tt.FCMask))
	if tt.ReadWriteMatch {
		if tt.ReadWrite {
			s.WriteString(" read")
		} else {
			s.WriteString(" write")
		}
	}
	if tt.CacheInhibit {
		s.WriteString(" CI")
	}
	return s.String()
}
