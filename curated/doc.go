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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with the Errorf() function, which takes a formatting
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is retained by the error and is what identifies it. Sentinel
// errors are therefore best declared as const strings and checked with Is()
// or Has(). For example, the memory bus declares:
//
//	const BusError = "bus error: %s: %s %s at $%08x"
//
// and a caller checks a returned error with:
//
//	if curated.Is(err, bus.BusError) {
//		...
//	}
//
// Has() checks the whole chain of curated errors, so an error created with
//
//	curated.Errorf("monitor: %v", err)
//
// still Has() the BusError pattern.
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain (separated by ": ") are printed only once.
package curated
