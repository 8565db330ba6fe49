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

package paths

import (
	"os"
	"path/filepath"
)

// the base path when running from a directory containing local resources
const localResourcePath = ".cube030"

// the name of the directory in the user's config directory
const configDir = "cube030"

// ResourcePath returns the resource string prepended with the base path.
// The subPth directory is created if it does not exist. An empty file
// returns the directory only.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

func getBasePath() (string, error) {
	if st, err := os.Stat(localResourcePath); err == nil && st.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
