// This file is part of Gopher8bit.
//
// Gopher8bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8bit.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program as set at build time
// with the linker, falling back to the VCS information embedded by the Go
// toolchain.
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8bit/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Gopher8bit"

// set by the linker for release builds
var number string

// Info describes the build.
type Info struct {
	// the release number, "unreleased" for VCS builds without a number and
	// "local" when there is no information at all
	Version string

	// the VCS revision. suffixed with "+dirty" if the working tree was
	// modified
	Revision string

	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

// Current returns the Info for the running program.
func Current() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build(number, nil)
	}
	return build(number, info.Settings)
}

func build(number string, settings []debug.BuildSetting) Info {
	var vcs bool
	var modified bool
	var revision string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	i := Info{
		Version:  number,
		Revision: "no revision information",
		Release:  number != "",
	}

	if revision != "" {
		i.Revision = revision
		if modified {
			i.Revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if i.Version == "" {
		if vcs {
			i.Version = "unreleased"
		} else {
			i.Version = "local"
		}
	}

	return i
}
