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

// Package ansi defines the escape sequences used to colour terminal output.
package ansi

import "fmt"

var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// Pens are bright foreground colours, indexed by colour name.
var Pens map[string]string

// DimPens are faint foreground colours, indexed by colour name.
var DimPens map[string]string

// NormalPen resets all colour and attributes.
const NormalPen = "\033[0m"

// Bold switches on the bold attribute.
const Bold = "\033[1m"

// ClearLine erases the current line and returns the cursor to column zero.
const ClearLine = "\r\033[2K"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for name, c := range colours {
		Pens[name] = fmt.Sprintf("\033[1;%dm", 30+c)
		DimPens[name] = fmt.Sprintf("\033[2;%dm", 30+c)
	}
}
