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

// Package prefs facilitates the storage and retrieval of preference values.
// Preferences are typed values (Bool, Int, String) that can be collected
// into a Disk instance and loaded from, or saved to, a simple text file.
//
// A preference can have pre and post hooks. A pre hook can reject a value by
// returning an error. A post hook is useful for reacting to a change.
//
// Values can also be pushed onto a command-line stack with
// PushCommandLineStack(). The most recent entry on the stack takes priority
// over the value in the preferences file when Disk.Load() is called.
package prefs
