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

	"github.com/jetsetilly/cube030/curated"
)

// ParseCommandTemplate turns a list of command definitions into a Commands
// instance, ready for validation and tab completion.
//
// The first word of each definition is the command keyword. The remaining
// words are arguments, which are either keywords or placeholders:
//
//	%N	numeric argument
//	%S	string argument
//	%F	filename argument
//
// A placeholder can be given a label, which is used in usage strings and
// error messages. For example, %<address>N.
//
// Arguments can be grouped. Alternatives in a group are separated by the
// vertical bar:
//
//	[a|b]	required group
//	(a|b)	optional group
//	{a|b}	optional group that can be repeated
//
// Groups can be nested.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
	}

	for _, t := range template {
		n, err := parseDefinition(t)
		if err != nil {
			return nil, curated.Errorf("parser: %v", err)
		}
		if _, ok := cmds.Index[n.tag]; ok {
			return nil, curated.Errorf("parser: duplicate command (%s)", n.tag)
		}
		cmds.Index[n.tag] = n
		cmds.cmds = append(cmds.cmds, n)
	}

	return cmds, nil
}

const groupCharacters = "[](){}|"

type parser struct {
	defn string
	pos  int
}

func parseDefinition(defn string) (*node, error) {
	defn = strings.TrimSpace(defn)

	keyword, args, _ := strings.Cut(defn, " ")
	if keyword == "" {
		return nil, curated.Errorf("empty definition")
	}
	if strings.ContainsAny(keyword, groupCharacters+"%") {
		return nil, curated.Errorf("command keyword must be a plain word (%s)", keyword)
	}

	p := &parser{defn: args}
	seq, err := p.sequence()
	if err != nil {
		return nil, curated.Errorf("%s: %v", keyword, err)
	}

	// sequence() stops at a close delimiter or a vertical bar. neither is
	// allowed at the top level
	if p.pos < len(p.defn) {
		return nil, curated.Errorf("%s: unexpected %c at position %d", keyword, p.defn[p.pos], p.pos)
	}

	return &node{
		tag:  strings.ToUpper(keyword),
		typ:  nodeRoot,
		next: seq,
	}, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.defn) && p.defn[p.pos] == ' ' {
		p.pos++
	}
}

// sequence parses words and groups until the end of the definition or until
// a character that ends a sequence.
func (p *parser) sequence() ([]*node, error) {
	var seq []*node

	for {
		p.skipSpace()
		if p.pos >= len(p.defn) {
			return seq, nil
		}

		c := p.defn[p.pos]
		switch c {
		case ']', ')', '}', '|':
			return seq, nil

		case '[', '(', '{':
			p.pos++
			n, err := p.group(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)

		default:
			n, err := p.word()
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
		}
	}
}

// group parses a list of alternatives up to the close delimiter that matches
// the open delimiter.
func (p *parser) group(open byte) (*node, error) {
	n := &node{}
	switch open {
	case '[':
		n.typ = nodeRequired
	case '(':
		n.typ = nodeOptional
	case '{':
		n.typ = nodeRepeat
	}

	for {
		seq, err := p.sequence()
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, curated.Errorf("empty alternative at position %d", p.pos)
		}
		n.branch = append(n.branch, seq)

		if p.pos >= len(p.defn) {
			return nil, curated.Errorf("unclosed %s group", delimiters[n.typ][0])
		}

		c := p.defn[p.pos]
		p.pos++
		if c == '|' {
			continue
		}
		if string(c) != delimiters[n.typ][1] {
			return nil, curated.Errorf("%s group closed with %c", delimiters[n.typ][0], c)
		}
		return n, nil
	}
}

// word parses a keyword or a placeholder.
func (p *parser) word() (*node, error) {
	start := p.pos

	// placeholder labels can contain spaces
	if strings.HasPrefix(p.defn[p.pos:], "%<") {
		if i := strings.IndexByte(p.defn[p.pos:], '>'); i > 0 {
			p.pos += i + 1
		}
	}

	for p.pos < len(p.defn) && p.defn[p.pos] != ' ' && !strings.ContainsRune(groupCharacters, rune(p.defn[p.pos])) {
		p.pos++
	}
	w := p.defn[start:p.pos]

	if w[0] != '%' {
		return &node{tag: strings.ToUpper(w), typ: nodeLeaf}, nil
	}

	n := &node{typ: nodeLeaf}

	// labelled placeholder
	if strings.HasPrefix(w, "%<") {
		label, rest, ok := strings.Cut(w[2:], ">")
		if !ok || label == "" {
			return nil, curated.Errorf("badly formed placeholder label (%s)", w)
		}
		n.placeholderLabel = label
		w = "%" + rest
	}

	switch w {
	case "%N", "%S", "%F":
		n.tag = w
	default:
		return nil, curated.Errorf("unknown placeholder (%s)", w)
	}

	return n, nil
}
