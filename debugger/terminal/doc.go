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

// Package terminal defines the operations required for command-line
// interaction with the debugger.
//
// For flexibility, terminal interaction happens through the Terminal
// interface. There are two reference implementations of this interface: the
// PlainTerminal and the ColorTerminal, found respectively in the plainterm and
// colorterm sub-packages.
//
// Note that history is not handled by this package. An implementation must
// implement this itself. Of the two reference implementations, the
// ColorTerminal package provides an example.
package terminal
