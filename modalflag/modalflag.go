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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles a command line consisting of flags and mode selectors. The
// Output field should be set before calling Parse() or help messages will
// not be seen.
type Modes struct {
	Output io.Writer

	args    []string
	argsIdx int

	// a new flagset is created for every mode
	flags *flag.FlagSet

	// sub-modes for the next call to Parse(). the first is the default
	subModes []string

	// every mode selected so far
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs begins parsing of a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode prepares for the flags of the mode that has just been selected.
// Unparsed arguments are carried forward.
func (md *Modes) NewMode() {
	md.subModes = nil
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes for the next call to Parse(). The first sub-mode in the first
// call to AddSubModes() is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flag and sub-mode information.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. check Mode() if sub-modes
	// were specified
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the flags for the current mode and select the next mode if
// sub-modes have been specified.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// skip the arguments consumed as flags
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if arg := strings.ToUpper(md.flags.Arg(0)); arg != "" {
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a sub-mode
// selector.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
