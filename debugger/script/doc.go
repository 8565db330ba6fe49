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

// Package script runs scripts against the machine. There are two kinds of
// script.
//
// Command scripts are plain text files of monitor commands, one per line.
// The Rescribe type reads a command script and satisfies the terminal.Input
// interface, so the debugger can use it as a source for its input loop.
// Comment lines begin with the # symbol.
//
// Lua scripts are run by the Lua type. The following functions are
// available to a Lua script, in addition to the Lua base library. Addresses
// are physical unless stated otherwise. The fc argument is a three bit
// function code (1 user data, 2 user program, 5 supervisor data, 6
// supervisor program) and defaults to 5.
//
//	peek(addr)                      read a byte without side effects
//	poke(addr, v)                   write a byte without side effects
//	read(size, addr [, fc])         logical read of 1, 2 or 4 bytes
//	write(size, addr, v [, fc])     logical write of 1, 2 or 4 bytes
//	translate(addr [, fc [, w]])    logical to physical, or nil and a fault
//	ptest(addr [, fc [, w]])        MMUSR value and last descriptor address
//	bank(addr)                      label of the bank at addr
//	mmu_write(reg, v [, lo])        write TC, TT0, TT1, MMUSR, or SRP/CRP (v is the high word)
//	flush([fc, mask [, addr]])      flush the ATC
//	log(msg)                        add an entry to the central log
//
// The print function writes to the output given to NewLua().
package script
