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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/memory/bus"
	"github.com/jetsetilly/cube030/hardware/mmu"
	"github.com/jetsetilly/cube030/logger"
	lua "github.com/yuin/gopher-lua"
)

// the function code used when a script does not specify one
const defaultFC = mmu.FCSupervisorData

// Lua runs Lua scripts against the machine.
type Lua struct {
	vm     *hardware.Machine
	output io.Writer
	L      *lua.LState
}

// NewLua is the preferred method of initialisation for the Lua type. The
// Close() function should be called when the Lua instance is no longer
// required.
func NewLua(vm *hardware.Machine, output io.Writer) *Lua {
	scr := &Lua{
		vm:     vm,
		output: output,
		L:      lua.NewState(),
	}

	funcs := map[string]lua.LGFunction{
		"print":     scr.print,
		"peek":      scr.peek,
		"poke":      scr.poke,
		"read":      scr.read,
		"write":     scr.write,
		"translate": scr.translate,
		"ptest":     scr.ptest,
		"bank":      scr.bank,
		"mmu_write": scr.mmuWrite,
		"flush":     scr.flush,
		"log":       scr.log,
	}
	for k, f := range funcs {
		scr.L.SetGlobal(k, scr.L.NewFunction(f))
	}

	return scr
}

// Close the Lua state.
func (scr *Lua) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Lua) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptRunError, err)
	}
	return nil
}

// RunString runs the Lua source code.
func (scr *Lua) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptRunError, err)
	}
	return nil
}

func checkAddress(L *lua.LState, n int) uint32 {
	return uint32(int64(L.CheckNumber(n)))
}

func checkSize(L *lua.LState, n int) bus.Size {
	switch sz := bus.Size(L.CheckInt(n)); sz {
	case bus.Byte, bus.Word, bus.Long:
		return sz
	}
	L.ArgError(n, "size must be 1, 2 or 4")
	return 0
}

func optAccess(L *lua.LState, n int, write bool) mmu.Access {
	fc := L.OptInt(n, defaultFC)
	if fc < 0 || fc > 7 {
		L.ArgError(n, "function code must be between 0 and 7")
	}
	return mmu.AccessFromFC(uint8(fc), write)
}

// borrow the machine and raise a Lua error if the function fails
func (scr *Lua) borrow(L *lua.LState, f func(*hardware.Machine) error) {
	if err := scr.vm.Borrow(f); err != nil {
		L.RaiseError("%v", err)
	}
}

func (scr *Lua) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.Get(i + 1).String()
	}
	io.WriteString(scr.output, strings.Join(s, "\t"))
	io.WriteString(scr.output, "\n")
	return 0
}

func (scr *Lua) peek(L *lua.LState) int {
	address := checkAddress(L, 1)
	var v uint8
	scr.borrow(L, func(m *hardware.Machine) error {
		var err error
		v, err = m.Mem.Peek(address)
		return err
	})
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Lua) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := uint8(L.CheckInt(2))
	scr.borrow(L, func(m *hardware.Machine) error {
		return m.Mem.Poke(address, v)
	})
	return 0
}

// faults are returned to the script as a nil value and an error string.
// any other error is raised
func (scr *Lua) pushFault(L *lua.LState, err error) int {
	if f, ok := mmu.IsFault(err); ok {
		L.Push(lua.LNil)
		L.Push(lua.LString(f.Error()))
		return 2
	}
	if curated.Has(err, bus.BusError) {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.RaiseError("%v", err)
	return 0
}

func (scr *Lua) read(L *lua.LState) int {
	sz := checkSize(L, 1)
	address := checkAddress(L, 2)
	acc := optAccess(L, 3, false)
	v, err := scr.vm.Read(sz, address, acc, 0)
	if err != nil {
		return scr.pushFault(L, err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Lua) write(L *lua.LState) int {
	sz := checkSize(L, 1)
	address := checkAddress(L, 2)
	v := checkAddress(L, 3)
	acc := optAccess(L, 4, true)
	if err := scr.vm.Write(sz, address, v, acc, 0); err != nil {
		return scr.pushFault(L, err)
	}
	L.Push(lua.LTrue)
	return 1
}

func (scr *Lua) translate(L *lua.LState) int {
	address := checkAddress(L, 1)
	acc := optAccess(L, 2, L.OptBool(3, false))
	var phys uint32
	var err error
	_ = scr.vm.Borrow(func(m *hardware.Machine) error {
		phys, _, err = m.MMU.Probe(address, acc)
		return nil
	})
	if err != nil {
		return scr.pushFault(L, err)
	}
	L.Push(lua.LNumber(phys))
	return 1
}

func (scr *Lua) ptest(L *lua.LState) int {
	address := checkAddress(L, 1)
	acc := optAccess(L, 2, L.OptBool(3, false))
	var sr mmu.Status
	var last uint32
	_ = scr.vm.Borrow(func(m *hardware.Machine) error {
		sr, last = m.MMU.PTest(address, acc)
		return nil
	})
	L.Push(lua.LNumber(sr.Value()))
	L.Push(lua.LNumber(last))
	return 2
}

func (scr *Lua) bank(L *lua.LState) int {
	address := checkAddress(L, 1)
	var label string
	_ = scr.vm.Borrow(func(m *hardware.Machine) error {
		label = m.Mem.Label(address)
		return nil
	})
	L.Push(lua.LString(label))
	return 1
}

func (scr *Lua) mmuWrite(L *lua.LState) int {
	reg := strings.ToUpper(L.CheckString(1))
	v := checkAddress(L, 2)
	var lo uint32
	if reg == "SRP" || reg == "CRP" {
		lo = checkAddress(L, 3)
	}
	scr.borrow(L, func(m *hardware.Machine) error {
		switch reg {
		case "TC":
			m.MMU.WriteTC(v)
		case "TT0":
			m.MMU.WriteTT0(v)
		case "TT1":
			m.MMU.WriteTT1(v)
		case "MMUSR":
			m.MMU.WriteMMUSR(uint16(v))
		case "SRP", "CRP":
			raw := uint64(v)<<32 | uint64(lo)
			if reg == "SRP" {
				m.MMU.WriteSRP(raw)
			} else {
				m.MMU.WriteCRP(raw)
			}
		default:
			return fmt.Errorf("unknown MMU register (%s)", reg)
		}
		return nil
	})
	return 0
}

func (scr *Lua) flush(L *lua.LState) int {
	top := L.GetTop()
	var fc, mask uint8
	if top >= 2 {
		fc = uint8(L.CheckInt(1)) & 0x07
		mask = uint8(L.CheckInt(2)) & 0x07
	}
	var address uint32
	if top >= 3 {
		address = checkAddress(L, 3)
	}
	_ = scr.vm.Borrow(func(m *hardware.Machine) error {
		switch {
		case top >= 3:
			m.MMU.FlushPage(address, fc, mask)
		case top >= 2:
			m.MMU.FlushFC(fc, mask)
		default:
			m.MMU.FlushAll()
		}
		return nil
	})
	return 0
}

func (scr *Lua) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
