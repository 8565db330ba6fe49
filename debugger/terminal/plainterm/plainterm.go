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

// Package plainterm implements the Terminal interface for the debugger. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/cube030/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      io.Reader
	output     io.Writer
	scanner    *bufio.Scanner
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal creates a PlainTerminal that reads from and writes to
// something other than stdin and stdout.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = os.Stdin
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if pt.output == nil {
		pt.output = os.Stdout
		pt.realOutput = term.IsTerminal(int(os.Stdout.Fd()))
	}
	pt.scanner = bufio.NewScanner(pt.input)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface. The plain
// terminal does not support tab completion.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimRight(pt.scanner.Text(), "\r"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// IsRealTerminal returns true if both input and output are connected to a
// real terminal.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput && pt.realOutput
}
