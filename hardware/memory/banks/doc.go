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

// Package banks contains the region handlers that are mapped into the
// physical address space by the memory package. Every type in this package
// implements the bus.Bank interface.
//
// A bank is responsible for its own address decoding. The address passed to
// Read(), Write(), Translate() and Check() is the unmodified physical
// address and each bank masks it against its own size. Mapping a bank at
// more than one place in the address space therefore creates an alias of
// the same storage.
//
// The RAM, ROM and Video banks also implement the bus.DebugBus interface.
// The IO, Empty and BusError banks do not because reading from them either
// has side effects or is meaningless.
package banks
