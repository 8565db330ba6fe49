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

// Package performance measures the speed of logical memory accesses through
// the MMU. The Check() function sets up an identity translation and reads
// from every page of the first RAM bank in turn, for the specified
// duration. The access rate and the MMU statistics are reported.
//
// The package also contains helper functions for CPU and memory profiling.
package performance
