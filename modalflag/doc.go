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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, with each mode having its
// own set of flags.
//
// Arguments are given with NewArgs() and flags are added with the AddBool(),
// AddString(), etc. functions before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MAP", "DEBUG")
//	r, err := md.Parse()
//
// If the first argument after the flags names one of the sub-modes then that
// mode is selected and the argument is consumed. Otherwise the first
// sub-mode is selected. Sub-mode names are case insensitive. The selected
// mode is returned by Mode().
//
// Flags for the selected mode are then added after a call to NewMode(),
// followed by another call to Parse(). The modes selected by each call to
// Parse() are recorded and returned by Path(), separated by a slash.
//
// Parse() returns ParseHelp if the -help flag was given. A help message will
// have been written to Output.
package modalflag
