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

package commandline

import (
	"strings"
)

// TabCompletion completes the last word of the input using the keywords of a
// Commands instance. Repeated calls with the previous completion cycle
// through the other possible completions.
type TabCompletion struct {
	cmds *Commands

	prefix         string
	matches        []string
	match          int
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete the input. The input is returned unchanged if there is nothing to
// complete.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through the matches of the previous completion
	if input == tc.lastCompletion && len(tc.matches) > 0 {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.prefix + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	words := strings.Fields(input)
	partial := ""
	if len(words) > 0 && !strings.HasSuffix(input, " ") {
		partial = strings.ToUpper(words[len(words)-1])
		words = words[:len(words)-1]
	}

	if len(words) == 0 {
		for _, n := range tc.cmds.cmds {
			if strings.HasPrefix(n.tag, partial) {
				tc.matches = append(tc.matches, n.tag)
			}
		}
	} else {
		n, ok := tc.cmds.Index[strings.ToUpper(words[0])]
		if !ok {
			return input
		}

		// walk every path without succeeding. the leaves expected at the end
		// of the input are the candidates
		m := &matcher{tokens: words[1:]}
		m.sequence(n.next, 0, func(int) bool { return false })
		if m.furthest == len(m.tokens) {
			for _, e := range m.expected {
				if e != nil && e.isKeyword() && strings.HasPrefix(e.tag, partial) && !tc.matched(e.tag) {
					tc.matches = append(tc.matches, e.tag)
				}
			}
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	if len(words) > 0 {
		tc.prefix = strings.Join(words, " ") + " "
	}
	tc.lastCompletion = tc.prefix + tc.matches[0] + " "

	return tc.lastCompletion
}

func (tc *TabCompletion) matched(tag string) bool {
	for _, m := range tc.matches {
		if m == tag {
			return true
		}
	}
	return false
}

// Reset forgets the previous completion.
func (tc *TabCompletion) Reset() {
	tc.prefix = ""
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.lastCompletion = ""
}
