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
	"strconv"
	"strings"

	"github.com/jetsetilly/cube030/curated"
)

// Sentinel errors.
const (
	UnknownCommand  = "unknown command: %s"
	UnexpectedInput = "unexpected input: %s"
	NoHelp          = "no help for %s"
)

// Validate input string against command defintions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string. Keyword arguments are normalised to upper case. The position in the
// token list is unchanged.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	cmd, ok := tokens.Peek()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	n, ok := cmds.Index[cmd]
	if !ok {
		return curated.Errorf(UnknownCommand, cmd)
	}

	start := tokens.curr
	m := &matcher{tokens: tokens.tokens[start+1:]}

	if !m.sequence(n.next, 0, m.atEnd) {
		if cmd == cmds.helpCommand && m.furthest < len(m.tokens) {
			return curated.Errorf(NoHelp, strings.ToUpper(m.tokens[m.furthest]))
		}
		return m.err()
	}

	// normalise the keywords on the matching path
	tokens.Get()
	for i := range m.tokens {
		tok, _ := tokens.Get()
		if m.keywords[i] {
			tokens.Update(strings.ToUpper(tok))
		}
	}
	tokens.curr = start

	return nil
}

// matcher walks the node tree with a list of argument tokens. every
// possibility is tried until one reaches the end of the token list.
type matcher struct {
	tokens []string

	// the token position of keyword matches on the current path
	keywords map[int]bool

	// the furthest position any path has reached and the leaf nodes that
	// were expected at that position. a nil entry means the end of input was
	// expected
	furthest int
	expected []*node
}

func (m *matcher) atEnd(pos int) bool {
	if pos == len(m.tokens) {
		return true
	}
	m.fail(pos, nil)
	return false
}

func (m *matcher) fail(pos int, n *node) {
	if pos > m.furthest {
		m.furthest = pos
		m.expected = m.expected[:0]
	}
	if pos == m.furthest {
		m.expected = append(m.expected, n)
	}
}

// sequence matches every node in seq, in order, starting at pos. the
// continuation is called with the position after the sequence.
func (m *matcher) sequence(seq []*node, pos int, cont func(int) bool) bool {
	if len(seq) == 0 {
		return cont(pos)
	}
	return m.match(seq[0], pos, func(p int) bool {
		return m.sequence(seq[1:], p, cont)
	})
}

func (m *matcher) alternatives(n *node, pos int, cont func(int) bool) bool {
	for _, seq := range n.branch {
		if m.sequence(seq, pos, cont) {
			return true
		}
	}
	return false
}

func (m *matcher) match(n *node, pos int, cont func(int) bool) bool {
	switch n.typ {
	case nodeRequired:
		return m.alternatives(n, pos, cont)

	case nodeOptional:
		return m.alternatives(n, pos, cont) || cont(pos)

	case nodeRepeat:
		// each repetition must consume at least one token
		return m.alternatives(n, pos, func(p int) bool {
			return p > pos && m.match(n, p, cont)
		}) || cont(pos)
	}

	if pos >= len(m.tokens) || !n.matches(m.tokens[pos]) {
		m.fail(pos, n)
		return false
	}

	if !n.isKeyword() {
		return cont(pos + 1)
	}

	if m.keywords == nil {
		m.keywords = make(map[int]bool)
	}
	m.keywords[pos] = true
	if cont(pos + 1) {
		return true
	}
	delete(m.keywords, pos)
	return false
}

// err describes why the furthest path failed.
func (m *matcher) err() error {
	if m.furthest >= len(m.tokens) {
		for _, n := range m.expected {
			if n != nil {
				return curated.Errorf(MissingArgument, n.tagVerbose())
			}
		}
		return curated.Errorf(MissingArgument, "argument")
	}

	// a number was expected and no keyword could have appeared instead
	numeric := false
	for _, n := range m.expected {
		if n == nil {
			continue
		}
		if n.isKeyword() {
			numeric = false
			break
		}
		if n.tag == "%N" {
			numeric = true
		}
	}
	if numeric {
		return curated.Errorf(InvalidNumber, m.tokens[m.furthest])
	}

	return curated.Errorf(UnexpectedInput, strings.Join(m.tokens[m.furthest:], " "))
}

// matches checks the token against a leaf node.
func (n node) matches(tok string) bool {
	switch n.tag {
	case "%N":
		// tokens from TokeniseInput() have already been normalised but
		// partial input from tab completion has not
		if strings.HasPrefix(tok, "$") {
			tok = "0x" + tok[1:]
		}
		_, err := strconv.ParseUint(tok, 0, 64)
		return err == nil
	case "%S", "%F":
		return true
	}
	return strings.ToUpper(tok) == n.tag
}
