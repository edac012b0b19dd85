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

// Package preferences holds the preference values of the emulated machines.
package preferences

import (
	"github.com/jetsetilly/gopher8bit/hardware/audio"
	"github.com/jetsetilly/gopher8bit/paths"
	"github.com/jetsetilly/gopher8bit/prefs"
)

// Preferences defines and collates the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// whether the machine emits log entries
	Logging prefs.Bool

	// region of a Master System when none is specified. one of Japan, USA,
	// Europe or Brazil
	Region prefs.String

	// cutoff frequency of the speaker's low-pass filter in Hz
	SpeakerCutoff prefs.Float

	// rate of the samples produced by the speaker in Hz
	SampleRate prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default prefs file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with a specified prefs
// file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := Defaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("hardware.logging", &p.Logging); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.region", &p.Region); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.speakercutoff", &p.SpeakerCutoff); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.samplerate", &p.SampleRate); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Defaults returns preferences with default values that are not attached to
// a prefs file. Save() and Load() have no effect.
func Defaults() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Logging.Set(true)
	_ = p.Region.Set("USA")
	_ = p.SpeakerCutoff.Set(audio.DefaultCutoff)
	_ = p.SampleRate.Set(44100)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
