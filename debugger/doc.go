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

// Package debugger implements the monitor, a command line tool for
// inspecting the physical address space and the MMU. Features include:
//
//   - the physical memory map and the bank at an address
//   - memory peek and poke
//   - translation of logical addresses without side effects
//   - PTEST and PFLUSH
//   - MMU register display and modification
//   - ATC contents
//   - command and Lua scripting
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(vm, term)
//
// Interaction with the debugger is through a terminal. The Terminal
// interface is defined in the terminal package. The colorterm and plainterm
// sub-packages provide the implementations.
//
// Once initialised, the debugger is started with the Start() function.
//
//	dbg.Start(initScript)
//
// The initScript is a command script or a Lua script (recognised by the .lua
// extension). It may be empty.
//
// The debugger accesses the machine through the Borrow() function of the
// Machine type. It is safe for the CPU core to be running on another
// goroutine.
package debugger
