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

package cartridgeloader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8bit/curated"
)

// ROMFetcher supplies the named ROM images required by a machine. The
// returned slice has one entry for each name, in order, and a missing ROM is
// a nil entry. An error is returned only if a ROM exists but could not be
// read.
type ROMFetcher func(names ...string) ([][]byte, error)

// DirectoryFetcher returns a ROMFetcher that looks for ROM images by name in
// the specified directory.
func DirectoryFetcher(dir string) ROMFetcher {
	return func(names ...string) ([][]byte, error) {
		roms := make([][]byte, len(names))
		for i, n := range names {
			d, err := os.ReadFile(filepath.Join(dir, n))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, curated.Errorf("cartridgeloader: %v", err)
			}
			roms[i] = d
		}
		return roms, nil
	}
}

// MapFetcher returns a ROMFetcher that supplies ROM images from memory.
func MapFetcher(images map[string][]byte) ROMFetcher {
	return func(names ...string) ([][]byte, error) {
		roms := make([][]byte, len(names))
		for i, n := range names {
			roms[i] = images[n]
		}
		return roms, nil
	}
}
