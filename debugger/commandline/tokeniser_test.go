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

func TestTokens(t *testing.T) {
	tk := commandline.TokeniseInput("  peek   $04000000 16 ")
	test.ExpectEquality(t, tk.String(), "peek   $04000000 16")
	test.ExpectEquality(t, tk.Remaining(), 3)

	s, ok := tk.Get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "PEEK")

	s, ok = tk.Peek()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "0x04000000")
	test.ExpectEquality(t, tk.Remainder(), "0x04000000 16")

	a, err := tk.GetAddress()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint32(0x04000000))

	n, err := tk.GetNumber("count", 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(16))
	test.ExpectEquality(t, tk.IsEnd(), true)

	_, err = tk.GetAddress()
	test.ExpectFailure(t, err)

	tk.Unget()
	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0x04000000")

	tk.Reset()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "PEEK")
}

func TestInvalidNumber(t *testing.T) {
	tk := commandline.TokeniseInput("BANK xyz")
	tk.Get()
	_, err := tk.GetAddress()
	test.ExpectFailure(t, err)

	// an invalid number is not consumed
	s, ok := tk.Get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "xyz")

	tk = commandline.TokeniseInput("POKE $100000000")
	tk.Get()
	_, err = tk.GetAddress()
	test.ExpectFailure(t, err)
}
