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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/cube030/curated"
)

// NoPrefsFile is returned by Load() when the preferences file does not
// exist. It is not usually a fatal error.
const NoPrefsFile = "prefs: no preferences file (%s)"

// WarningBoilerPlate is written to the top of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// the separator between key and value in the preferences file
const fileSeparator = " :: "

// Disk represents preference values that can be stored on disk. A Disk
// instance with an empty path is never loaded or saved but still applies
// values from the command line stack.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) *Disk {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSeparator, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to the list of values to store on disk. The key must
// not contain the file separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(fileSeparator)) {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Set the value of the preference with the key.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return fmt.Errorf("prefs: unknown key %q", key)
	}
	return p.Set(v)
}

// Get the value of the preference with the key.
func (dsk *Disk) Get(key string) (Value, bool) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Reset all preferences to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Load preferences from disk. Unknown keys in the file are ignored. Values
// on the command line stack are applied after the file has been read.
func (dsk *Disk) Load() error {
	var fileErr error

	if dsk.path != "" {
		fileErr = dsk.loadFile()
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return err
			}
		}
	}

	return fileErr
}

func (dsk *Disk) loadFile() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), fileSeparator)
		if !ok {
			continue
		}
		if p, ok := dsk.entries[strings.TrimSpace(k)]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return scanner.Err()
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	s.WriteString(dsk.String())

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	return nil
}
