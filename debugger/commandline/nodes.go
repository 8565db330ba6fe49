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
	"fmt"
	"strings"
)

type nodeType int

func (t nodeType) String() string {
	switch t {
	case nodeRoot:
		return "nodeRoot"
	case nodeLeaf:
		return "nodeLeaf"
	case nodeRequired:
		return "nodeRequired"
	case nodeOptional:
		return "nodeOptional"
	case nodeRepeat:
		return "nodeRepeat"
	}
	panic("unknown nodeType")
}

const (
	nodeRoot nodeType = iota + 1
	nodeLeaf
	nodeRequired
	nodeOptional
	nodeRepeat
)

// group delimiters for each group type.
var delimiters = map[nodeType][2]string{
	nodeRequired: {"[", "]"},
	nodeOptional: {"(", ")"},
	nodeRepeat:   {"{", "}"},
}

// a node is a command keyword, an argument or a group of arguments.
//
// the root node's tag is the command keyword and next is the list of
// arguments that follow it. a leaf node has a tag and nothing else. a group
// node has an empty tag and a list of alternative sequences in branch.
type node struct {
	tag string

	// friendly name for the placeholder tags. not used if tag is not a
	// placeholder. you can use isPlaceholder() to check
	placeholderLabel string

	typ nodeType

	next   []*node
	branch [][]*node
}

// String returns the template representation of the node.
func (n node) String() string {
	return n.string(false)
}

// usageString is like String() but placeholders are shown by their label.
func (n node) usageString() string {
	return n.string(true)
}

func (n node) string(useLabels bool) string {
	switch n.typ {
	case nodeRoot:
		s := strings.Builder{}
		s.WriteString(n.tag)
		if len(n.next) > 0 {
			s.WriteString(" ")
			s.WriteString(sequenceString(n.next, useLabels))
		}
		return s.String()

	case nodeRequired, nodeOptional, nodeRepeat:
		alts := make([]string, len(n.branch))
		for i := range n.branch {
			alts[i] = sequenceString(n.branch[i], useLabels)
		}
		d := delimiters[n.typ]
		return fmt.Sprintf("%s%s%s", d[0], strings.Join(alts, "|"), d[1])
	}

	if n.isPlaceholder() && n.placeholderLabel != "" {
		if useLabels {
			return fmt.Sprintf("<%s>", n.placeholderLabel)
		}
		return fmt.Sprintf("%%<%s>%c", n.placeholderLabel, n.tag[1])
	}

	return n.tag
}

func sequenceString(seq []*node, useLabels bool) string {
	s := make([]string, len(seq))
	for i := range seq {
		s[i] = seq[i].string(useLabels)
	}
	return strings.Join(s, " ")
}

// tagVerbose returns a readable version of the tag field, using labels if
// possible.
func (n node) tagVerbose() string {
	if n.isPlaceholder() {
		if n.placeholderLabel != "" {
			return n.placeholderLabel
		}

		switch n.tag {
		case "%S":
			return "string argument"
		case "%N":
			return "numeric argument"
		case "%F":
			return "filename argument"
		default:
			return "placeholder argument"
		}
	}
	return n.tag
}

// isPlaceholder checks tag to see if it is a placeholder. does not check to
// see if placeholder is valid.
func (n node) isPlaceholder() bool {
	return len(n.tag) == 2 && n.tag[0] == '%'
}

// isKeyword is true for leaf nodes that must be matched exactly.
func (n node) isKeyword() bool {
	return n.typ == nodeLeaf && !n.isPlaceholder()
}
