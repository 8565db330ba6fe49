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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// the command line stack is only ever accessed from the main goroutine
var commandLineStack []map[string]Value

// SizeCommandLineStack returns the number of entries on the command line
// stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a preferences string of the form
//
//	key::value; key::value
//
// and pushes the result onto the stack.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if ok {
			cl[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the top of the stack and returns the entries
// that have not yet been consumed, in the same format accepted by
// PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%v; ", key, popped[key]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref returns the value for the key from the top of the
// stack. The entry is consumed.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
