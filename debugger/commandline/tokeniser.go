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

// Package commandline divides monitor input into tokens and converts tokens
// into the values used by the monitor commands.
package commandline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/cube030/curated"
)

// Tokens represents a single line of input.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of remaining tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached the function returns false.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Update the most recently returned token.
func (tk *Tokens) Update(tok string) {
	if tk.curr > 0 {
		tk.tokens[tk.curr-1] = tok
	}
}

// Peek returns the next token in the list without advancing.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Sentinel errors.
const (
	MissingArgument = "missing argument: %s"
	InvalidNumber   = "invalid number: %s"
)

// GetNumber returns the next token as a number no wider than bits. Numbers
// are decimal unless prefixed with 0x (or $, which is normalised to 0x by
// TokeniseInput).
func (tk *Tokens) GetNumber(name string, bits int) (uint64, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, name)
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		tk.Unget()
		return 0, curated.Errorf(InvalidNumber, s)
	}
	return v, nil
}

// GetAddress is GetNumber() for a 32 bit address.
func (tk *Tokens) GetAddress() (uint32, error) {
	v, err := tk.GetNumber("address", 32)
	return uint32(v), err
}

// TokeniseInput creates and returns a new Tokens instance. The first token
// is normalised to upper case.
func TokeniseInput(input string) *Tokens {
	tk := new(Tokens)

	// remove leading/trailing space
	input = strings.TrimSpace(input)

	// divide user input into tokens. removes excess white space
	tk.tokens = strings.Fields(input)

	// take a note of the raw input
	tk.input = input

	// normalise variations in syntax
	for i := 0; i < len(tk.tokens); i++ {
		// normalise hex notation
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	if len(tk.tokens) > 0 {
		tk.tokens[0] = strings.ToUpper(tk.tokens[0])
	}

	return tk
}
