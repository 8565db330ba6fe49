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

package script_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cube030/debugger/script"
	"github.com/jetsetilly/cube030/debugger/terminal"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/logger"
	"github.com/jetsetilly/cube030/test"
)

func TestRescribe(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "commands")
	err := os.WriteFile(fn, []byte("# comment\nMAP\n\n  # indented comment\nBANK $04000000\n"), 0o600)
	test.DemandSuccess(t, err)

	scr, err := script.RescribeScript(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scr.IsInteractive(), false)

	var s string
	s, err = scr.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "MAP")

	s, err = scr.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "BANK $04000000")

	_, err = scr.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	_, err = script.RescribeScript(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}

func newLua(t *testing.T) (*script.Lua, *hardware.Machine, *test.CompareWriter) {
	t.Helper()
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	vm := hardware.NewMachine(p)
	out := &test.CompareWriter{}
	scr := script.NewLua(vm, out)
	t.Cleanup(scr.Close)
	return scr, vm, out
}

func TestLuaPeekPoke(t *testing.T) {
	scr, vm, out := newLua(t)

	test.ExpectSuccess(t, scr.RunString(`
		poke(0x04000000, 0x12)
		print(peek(0x04000000))
		print(bank(0x01000000), bank(0x04000000))
	`))
	test.ExpectEquality(t, out.String(), "18\nROM\tRAM bank 0\n")

	v, err := vm.Mem.Peek(0x04000000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	// the IO bank cannot be peeked
	test.ExpectFailure(t, scr.RunString(`peek(0x02000000)`))
}

func TestLuaTranslate(t *testing.T) {
	scr, vm, out := newLua(t)

	// two level tables with 4KiB pages. logical page 0 is mapped to the
	// second page of RAM
	test.ExpectSuccess(t, scr.RunString(`
		assert(write(4, 0x04010000, 0x04011002))
		assert(write(4, 0x04011000, 0x04001001))
		mmu_write("CRP", 0x7fff0002, 0x04010000)
		mmu_write("TC", 0x80c0aa00)
		print(translate(0x10, 1))

		local p, f = translate(0x2000, 1)
		assert(p == nil)
		assert(f ~= nil)

		assert(write(2, 0x10, 0xbeef, 1))
		print(read(2, 0x10, 1))
	`))
	test.ExpectEquality(t, out.String(), "67112976\n48879\n")

	v, err := vm.Mem.Read(2, 0x04001010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xbeef))

	test.ExpectSuccess(t, scr.RunString(`ptest(0x2000, 1)`))
	test.ExpectEquality(t, vm.MMU.MMUSR().Invalid, true)

	test.ExpectSuccess(t, scr.RunString(`flush()`))
	test.ExpectEquality(t, vm.MMU.ATC.Used(), 0)
}

func TestLuaErrors(t *testing.T) {
	scr, _, _ := newLua(t)
	test.ExpectFailure(t, scr.RunString(`read(3, 0)`))
	test.ExpectFailure(t, scr.RunString(`mmu_write("XYZ", 0)`))
	test.ExpectFailure(t, scr.RunString(`this is not lua`))
	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestLuaLog(t *testing.T) {
	scr, _, _ := newLua(t)
	logger.Clear()
	test.ExpectSuccess(t, scr.RunString(`log("hello")`))

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "script: hello\n")
}

func TestLuaRunawayOutput(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	w, err := test.NewCappedWriter(16)
	test.DemandSuccess(t, err)

	scr := script.NewLua(hardware.NewMachine(p), w)
	defer scr.Close()

	test.ExpectSuccess(t, scr.RunString(`for i = 1, 10000 do print(i) end`))
	test.ExpectEquality(t, w.String(), "1\n2\n3\n4\n5\n6\n7\n8\n")
}
