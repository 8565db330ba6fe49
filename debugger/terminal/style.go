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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can
// interpret this how it sees fit.
type Style int

// List of valid Style values.
const (
	// the input as echoed by the debugger. a terminal that displays input
	// as it is typed will not want to print this
	StyleEcho Style = iota

	// information from a command
	StyleFeedback

	// help text
	StyleHelp

	// entries from the log
	StyleLog

	// the address map and other tabular output
	StyleInstrument

	// errors are always printed, even when the terminal is silenced
	StyleError
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Content string

	// the prompt is asking for confirmation of an action
	Confirm bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	if p.Confirm {
		return p.Content
	}
	return "[ " + p.Content + " ] > "
}
