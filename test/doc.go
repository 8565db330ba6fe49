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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The ExpectEquality() family of functions report an error and allow the
// test to continue. The Demand*() functions stop the test immediately.
//
// The optional tags argument is used to identify the check in the failure
// message. This is useful when the check is made inside a loop.
package test
