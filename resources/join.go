// This file is part of Guncon2Go.
//
// Guncon2Go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Guncon2Go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Guncon2Go.  If not, see <https://www.gnu.org/licenses/>.

// Package resources resolves the location of files on disk that the project
// needs to preserve between executions: preferences, title database
// overrides, etc.
//
// If the directory named by the portablePath constant exists in the working
// directory then resources are stored there. Otherwise the user's
// os.UserConfigDir() is used.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the directory name used in both the portable and non-portable cases.
const resourceDir = "guncon2go"

// if this directory exists in the current working directory then it is used
// as the base for all resource paths.
const portablePath = ".guncon2go"

func checkPortable() bool {
	s, err := os.Stat(portablePath)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// JoinPath prepends the supplied path with an OS/build specific base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	var b string

	if checkPortable() {
		b = portablePath
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		b = filepath.Join(cnf, resourceDir)
	}

	// do not prepend the base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
