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

// Package bus defines the interfaces and types shared by every part of the
// physical address space.
//
// Every region of physical memory is a Bank. The dispatcher in the memory
// package holds one reference per 64KiB slot and forwards each access,
// unmodified, to the Bank for that slot. It is the Bank's responsibility to
// mask the address into its own backing store, which is how mirrors are
// implemented.
//
// Banks that can be inspected without side effects also implement the
// DebugBus interface.
package bus
