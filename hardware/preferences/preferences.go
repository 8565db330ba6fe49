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

// Package preferences holds the configuration of the emulated machine that
// is consumed by the memory and MMU packages. Preferences are registered
// with a prefs.Disk and so can be loaded from file and overridden from the
// command line.
package preferences

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/prefs"
)

// Video types accepted by the Video preference.
const (
	VideoMono  = "mono"
	VideoColor = "color"
)

// Preferences for the emulated machine.
type Preferences struct {
	dsk *prefs.Disk

	// size of each RAM bank in MiB. zero means the bank is unpopulated
	RAMBank [memorymap.RAMBanks]prefs.Int

	// the type of framebuffer fitted. one of VideoMono or VideoColor
	Video prefs.String

	// low addresses of the ROM boot alias read from RAM
	BootOverlay prefs.Bool

	// empty RAM regions answer long word reads with the address and
	// redirect long word writes into the populated part of the RAM bank.
	// if false every access to an empty region is a bus error
	EmptyQuirk prefs.Bool

	// apply the function code fields of the transparent translation
	// registers when matching
	TTFunctionCodes prefs.Bool

	// limit violations found during a table walk are faults rather than
	// log entries
	EnforceLimit prefs.Bool

	// address translation cache is enabled. if false, every translation
	// requires a table walk
	ATC prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path is the location of the preferences file. An
// empty path means that preferences are never loaded from or saved to disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.dsk = prefs.NewDisk(path)

	for i := range p.RAMBank {
		p.RAMBank[i].SetHookPre(func(v prefs.Value) error {
			mb := v.(int)
			if mb < 0 || mb > memorymap.RAMBankSpan>>20 || bits.OnesCount(uint(mb)) > 1 {
				return curated.Errorf("preferences: illegal size for RAM bank %d (%dMiB)", i, mb)
			}
			return nil
		})
		if err := p.dsk.Add(fmt.Sprintf("memory.bank%d", i), &p.RAMBank[i]); err != nil {
			return nil, err
		}
	}

	p.Video.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case VideoMono, VideoColor:
			return nil
		}
		return curated.Errorf("preferences: unknown video type (%s)", v)
	})

	entries := []struct {
		key  string
		pref interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"memory.video", &p.Video},
		{"memory.bootoverlay", &p.BootOverlay},
		{"memory.emptyquirk", &p.EmptyQuirk},
		{"mmu.ttfcmatch", &p.TTFunctionCodes},
		{"mmu.enforcelimit", &p.EnforceLimit},
		{"mmu.atc", &p.ATC},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		// a missing preferences file is not an error
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	for i := range p.RAMBank {
		if err := p.RAMBank[i].Set(4); err != nil {
			return err
		}
	}
	for _, err := range []error{
		p.Video.Set(VideoMono),
		p.BootOverlay.Set(false),
		p.EmptyQuirk.Set(true),
		p.TTFunctionCodes.Set(false),
		p.EnforceLimit.Set(false),
		p.ATC.Set(true),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Set the value of the preference with the key.
func (p *Preferences) Set(key string, value prefs.Value) error {
	return p.dsk.Set(key, value)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// RAMBankSize returns the size in bytes of the RAM bank.
func (p *Preferences) RAMBankSize(bank int) uint32 {
	return uint32(p.RAMBank[bank].Get().(int)) << 20
}

// RAMSize returns the total size in bytes of all RAM banks.
func (p *Preferences) RAMSize() uint32 {
	var sz uint32
	for i := range p.RAMBank {
		sz += p.RAMBankSize(i)
	}
	return sz
}
