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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/prefs"
	"github.com/jetsetilly/cube030/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(16))
	test.ExpectEquality(t, v.Get().(int), 16)
	test.ExpectSuccess(t, v.Set(" 8 "))
	test.ExpectEquality(t, v.String(), "8")
	test.ExpectFailure(t, v.Set("eight"))
	test.ExpectEquality(t, v.Get().(int), 8)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) > 16 {
			return errors.New("too big")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(4))
	test.ExpectEquality(t, post, 4)
	test.ExpectFailure(t, v.Set(32))
	test.ExpectEquality(t, v.Get().(int), 4)
	test.ExpectEquality(t, post, 4)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	var b prefs.Bool
	var i prefs.Int
	var s prefs.String

	dsk := prefs.NewDisk(fn)
	test.DemandSuccess(t, dsk.Add("memory.bootoverlay", &b))
	test.DemandSuccess(t, dsk.Add("memory.bank0", &i))
	test.DemandSuccess(t, dsk.Add("memory.video", &s))
	test.ExpectFailure(t, dsk.Add("bad :: key", &s))

	// missing file is reported with the NoPrefsFile pattern
	err := dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(16))
	test.ExpectSuccess(t, s.Set("mono"))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+
		"memory.bank0 :: 16\nmemory.bootoverlay :: true\nmemory.video :: mono\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 16)
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "mono")
}

func TestCommandLineStack(t *testing.T) {
	var i prefs.Int
	dsk := prefs.NewDisk("")
	test.DemandSuccess(t, dsk.Add("memory.bank1", &i))

	prefs.PushCommandLineStack("memory.bank1::4; memory.unknown::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 4)

	// consumed entries are not returned by the pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "memory.unknown::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
