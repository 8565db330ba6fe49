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

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/debugger/terminal"
	"github.com/jetsetilly/cube030/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/cube030/debugger/terminal/colorterm/easyterm/ansi"
)

// maximum number of entries in the command history
const maxHistory = 100

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0
	history := len(ct.history)

	// the input being typed before the user started scrolling through the
	// history. restored when the user scrolls past the end of the history
	var pending []rune

	redraw := func() {
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		if !ct.silenced {
			ct.EasyTerm.TermPrint(ansi.Bold)
			ct.EasyTerm.TermPrint(prompt.String())
			ct.EasyTerm.TermPrint(ansi.NormalPen)
		}
		ct.EasyTerm.TermPrint(string(input))
		if back := len(input) - cursor; back > 0 {
			ct.EasyTerm.TermPrintf("\033[%dD", back)
		}
	}

	for {
		redraw()

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.CBreakMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}
			s := string(input)
			if s != "" && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
				if len(ct.history) > maxHistory {
					ct.history = ct.history[1:]
				}
			}
			return s, nil

		case easyterm.KeyTab:
			// completion is of the input up to the cursor. anything after the
			// cursor is kept
			if ct.tabCompletion != nil {
				head := ct.tabCompletion.Complete(string(input[:cursor]))
				input = append([]rune(head), input[cursor:]...)
				cursor = len([]rune(head))
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
			}

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.history) {
						pending = append(pending[:0], input...)
					}
					history--
					input = []rune(ct.history[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.history) {
					history++
					if history == len(ct.history) {
						input = append([]rune{}, pending...)
					} else {
						input = []rune(ct.history[history])
					}
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
			}
		}
	}
}
