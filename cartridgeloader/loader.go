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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
)

// Kind of media described by a Loader.
type Kind int

// List of valid Kind values.
const (
	Cartridge Kind = iota
	Tape
)

func (k Kind) String() string {
	switch k {
	case Cartridge:
		return "cartridge"
	case Tape:
		return "tape"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".SMS", ".SG", ".BIN", ".ROM", ".WAV", ".MP3"}

// UnexpectedHash is returned by Load() if the hash of the loaded data does
// not match the expected hash.
const UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"

// Loader specifies the media to be loaded.
type Loader struct {
	// filename or URL of the media
	Filename string

	// the kind of media. set by NewLoader() according to the file extension
	Kind Kind

	// expected hash of the loaded data. an empty string indicates that the
	// hash is unknown and need not be validated. after a successful Load()
	// the value is the hash of the loaded data
	Hash string

	// the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".WAV", ".MP3":
		cl.Kind = Tape
	default:
		cl.Kind = Cartridge
	}

	return cl
}

// ShortName returns the filename without the path or extension.
func (cl Loader) ShortName() string {
	n := path.Base(cl.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return cl.Data != nil
}

// Load the data. Filenames with an http or https scheme are fetched over the
// network. Everything else is assumed to be a local file.
func (cl *Loader) Load() error {
	if cl.Data != nil {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		var err error
		data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
