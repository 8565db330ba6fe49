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

// Package memorymap describes the layout of the physical address space.
//
// The 32bit physical address space is divided into 65536 slots of 64KiB.
// Every slot is served by exactly one bank. The constants in this package
// define where each region begins and how large it is. The mapping of banks
// onto slots is performed by the memory package.
//
//	00000000 -> 0001ffff	ROM (boot alias)
//	01000000 -> 0101ffff	ROM
//	02000000 -> 0201ffff	I/O
//	02100000 -> 0211ffff	I/O (mirror)
//	04000000 -> 07ffffff	RAM, four banks of up to 16MiB
//	0b000000 -> 0b03ffff	monochrome VRAM
//	2c000000 -> 2c1fffff	colour VRAM
//
// Everything else is served by the bus error bank.
package memorymap
