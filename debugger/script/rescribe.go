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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/debugger/terminal"
)

// Sentinel errors.
const (
	ScriptFileUnavailable = "script: file unavailable (%v)"
	ScriptFileError       = "script: file error (%v)"
	ScriptRunError        = "script: %v"
)

const commentLine = "#"

// check if line is prepended with commentLine (ignoring leading spaces)
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe is a command script. The type implements the terminal.Input
// interface.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptFile string) (*Rescribe, error) {
	f, err := os.Open(scriptFile)
	if err != nil {
		return nil, curated.Errorf(ScriptFileUnavailable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	buffer, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf(ScriptFileError, err)
	}

	return newRescribe(scriptFile, string(buffer)), nil
}

func newRescribe(scriptFile string, content string) *Rescribe {
	scr := &Rescribe{scriptFile: scriptFile}
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || isComment(l) {
			continue
		}
		scr.lines = append(scr.lines, l)
	}
	return scr
}

func (scr *Rescribe) String() string {
	return scr.scriptFile
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface. The prompt is ignored.
func (scr *Rescribe) TermRead(_ terminal.Prompt) (string, error) {
	if scr.lineCt >= len(scr.lines) {
		return "", io.EOF
	}
	scr.lineCt++
	return scr.lines[scr.lineCt-1], nil
}
