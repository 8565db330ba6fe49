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

package debugger

import (
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/cube030/debugger/commandline"
	"github.com/jetsetilly/cube030/debugger/terminal"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/mmu"
)

// the transparent translation registers without the unexported match masks
type vizTT struct {
	Raw            uint32
	Enabled        bool
	CacheInhibit   bool
	ReadWrite      bool
	ReadWriteMatch bool
	AddressBase    uint8
	AddressMask    uint8
	FCBase         uint8
	FCMask         uint8
}

// the decoded MMU state as it is presented to memviz. only valid ATC
// entries are included
type vizState struct {
	TC    mmu.TranslationControl
	SRP   mmu.RootPointer
	CRP   mmu.RootPointer
	TT0   vizTT
	TT1   vizTT
	MMUSR mmu.Status
	ATC   []mmu.ATCEntry
	Stats mmu.Stats
}

func newVizTT(tt mmu.TransparentTranslation) vizTT {
	return vizTT{
		Raw:            tt.Raw,
		Enabled:        tt.Enabled,
		CacheInhibit:   tt.CacheInhibit,
		ReadWrite:      tt.ReadWrite,
		ReadWriteMatch: tt.ReadWriteMatch,
		AddressBase:    tt.AddressBase,
		AddressMask:    tt.AddressMask,
		FCBase:         tt.FCBase,
		FCMask:         tt.FCMask,
	}
}

func newVizState(m *hardware.Machine) *vizState {
	st := &vizState{
		TC:    m.MMU.TC,
		SRP:   m.MMU.SRP,
		CRP:   m.MMU.CRP,
		TT0:   newVizTT(m.MMU.TT[0]),
		TT1:   newVizTT(m.MMU.TT[1]),
		MMUSR: m.MMU.MMUSR(),
		Stats: m.MMU.Stats,
	}
	for _, e := range m.MMU.ATC.Entries {
		if e.Valid() {
			st.ATC = append(st.ATC, e)
		}
	}
	return st
}

// writeViz writes the MMU state as a graphviz document.
func writeViz(w io.Writer, m *hardware.Machine) {
	memviz.Map(w, newVizState(m))
}

// the VIZ command writes to a file if a filename is given, otherwise to the
// terminal
func (dbg *Debugger) viz(tokens *commandline.Tokens) error {
	filename, ok := tokens.Get()

	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		if ok {
			return dbg.toFile(filename, func(f *os.File) error {
				writeViz(f, m)
				return nil
			})
		}
		s := &strings.Builder{}
		writeViz(s, m)
		dbg.printLine(terminal.StyleInstrument, "%s", s.String())
		return nil
	})
}
