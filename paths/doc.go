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

// Package paths contains functions to prepare paths to cube030 resources.
//
// The ResourcePath() function prepends the resource with the appropriate
// config directory. For example, the following returns the path to the
// preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If the directory ".cube030" is present in the program's current directory
// then that is the base path. Otherwise the "cube030" directory in the
// user's config directory (see os.UserConfigDir()) is used, and created if
// necessary. On a modern Linux system, the path returned above will be:
//
//	/home/user/.config/cube030/preferences
package paths
