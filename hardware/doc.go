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

// Package hardware is the base package for the emulated memory subsystem.
// The Machine type ties together the physical address space (the memory
// package) and the memory management unit (the mmu package) and is the
// interface used by a CPU core.
//
// Every logical access made through the Machine is first translated by the
// MMU. The resulting physical address is then dispatched by the memory
// package to the region handler mapped at that address.
package hardware
