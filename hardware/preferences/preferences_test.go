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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/preferences"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/prefs"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.Defaults()
	test.ExpectEquality(t, p.Logging.Get().(bool), true)
	test.ExpectEquality(t, p.Region.String(), "USA")
	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())

	var perm logger.Permission
	test.DemandImplements(t, p, &perm)
	test.ExpectSuccess(t, p.AllowLogging())
	test.ExpectSuccess(t, p.Logging.Set(false))
	test.ExpectFailure(t, p.AllowLogging())
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Region.Set("Europe"))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Region.String(), "Europe")
	test.ExpectEquality(t, q.SpeakerCutoff.Get().(float64), 8000.0)

	prefs.PushCommandLineStack("hardware.logging::false")
	defer prefs.PopCommandLineStack()
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.Logging.Get().(bool), false)
}
