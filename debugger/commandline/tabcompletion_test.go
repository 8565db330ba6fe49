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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/cube030/debugger/commandline"
	"github.com/jetsetilly/cube030/test"
)

func TestTabCompletion(t *testing.T) {
	var cmds *commandline.Commands
	var tc *commandline.TabCompletion
	var completion, expected string
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{
		"TEST [arg]",
		"TEST1 [arg]",
		"FOO [bar|baz] wibble",
	})
	test.DemandSuccess(t, err)

	tc = commandline.NewTabCompletion(cmds)

	completion = "TE"
	expected = "TEST "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// next completion option
	expected = "TEST1 "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// cycle back to the first completion option
	expected = "TEST "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	tc.Reset()
	completion = "TEST a"
	expected = "TEST ARG "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	tc.Reset()
	completion = "FOO ba"
	expected = "FOO BAR "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	expected = "FOO BAZ "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// whitespace between words is collapsed
	tc.Reset()
	completion = "FOO   bar     wib"
	expected = "FOO bar WIBBLE "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// nothing to complete
	tc.Reset()
	completion = "FOO bar wibble x"
	expected = "FOO bar wibble x"
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	completion = "XYZ a"
	expected = "XYZ a"
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)
}

func TestTabCompletion_placeholders(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TRANSLATE %<address>N (UD|UP|SD|SP|%N) (R|W)",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	test.ExpectEquality(t, tc.Complete("translate $10 s"), "translate $10 SD ")
	test.ExpectEquality(t, tc.Complete("translate $10 SD "), "translate $10 SP ")

	// the optional function code can be skipped
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("translate $10 w"), "translate $10 W ")

	// completion after a numeric function code
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("translate $10 5 r"), "translate $10 5 R ")
}

func TestTabCompletion_doubleArgs(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"TEST (egg|fog|nug nog|big) (tug)"})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	test.ExpectEquality(t, tc.Complete("TEST eg"), "TEST EGG ")
	test.ExpectEquality(t, tc.Complete("TEST egg T"), "TEST egg TUG ")
	test.ExpectEquality(t, tc.Complete("TEST n"), "TEST NUG ")
	test.ExpectEquality(t, tc.Complete("TEST nug n"), "TEST nug NOG ")
	test.ExpectEquality(t, tc.Complete("TEST nug nog t"), "TEST nug nog TUG ")
}
