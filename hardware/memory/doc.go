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

// Package memory implements the physical address space of the machine.
//
// The address space is divided into 65536 slots of 64KiB each. Every slot
// refers to a region handler (a bus.Bank) and a single handler is usually
// referred to by many slots. An access is dispatched by using the top
// sixteen bits of the physical address to index the slot table. The
// address itself is passed to the bank unmodified.
//
//	MMU ---- physical address ---- slot table ---- RAM (banks 0 to 3)
//	                                    |
//	                                    |---- Empty (unpopulated RAM)
//	                                    |
//	                                    |---- ROM -<-- boot overlay
//	                                    |
//	                                    |---- IO ---- devices
//	                                    |
//	                                    |---- VRAM
//	                                    |
//	                                     ---- BusError
//
// The slot table is built by Reset() from the current preferences. Every
// slot always refers to a bank. Slots that have not been assigned to a
// region refer to the BusError bank.
//
// The Peek() and Poke() functions are for the debugger. They never have
// side effects and refuse to access the IO, Empty and BusError banks.
package memory
