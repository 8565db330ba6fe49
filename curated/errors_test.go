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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/test"
)

const testPattern = "test error: %#08x"
const wrapPattern = "monitor: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 0x1000)
	test.ExpectEquality(t, e.Error(), "test error: 0x001000")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Has(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("bus error: %s", "empty")
	f := curated.Errorf("bus error: %v", e)
	test.ExpectEquality(t, f.Error(), "bus error: empty")
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf("wrapped: %v", sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}
