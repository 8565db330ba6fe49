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

// Package version reports the version of the application. The version number
// is set at build time with the linker. When there is no version number the
// VCS information embedded by the Go toolchain is used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Cube030"

// if number is empty then the project was not built with a version number
// supplied to the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/cube030/version.number=v0.1.0"
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version.
//
// If the version string is "unreleased" then the project has been built from
// a VCS checkout without a version number. If the version string is "local"
// then there is no version number and no VCS information.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name, version and revision as a single line.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := read(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
