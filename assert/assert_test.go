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

package assert_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8bit/assert"
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestInconsistency(t *testing.T) {
	logger.Clear()
	echo, err := test.NewCappedWriter(128)
	test.DemandSuccess(t, err)
	logger.SetEcho(echo)
	defer logger.SetEcho(nil)

	const expected = "test: internal inconsistency: unexpected port group (0x100)\n"

	defer func() {
		if assert.Enabled() {
			r := recover()
			err, ok := r.(error)
			test.DemandSuccess(t, ok)
			test.ExpectSuccess(t, curated.Has(err, assert.InternalInconsistency))
		}

		w := &strings.Builder{}
		logger.Tail(w, 1)
		test.ExpectEquality(t, w.String(), expected)
		test.ExpectEquality(t, echo.String(), expected)
	}()

	assert.Inconsistency("test", "unexpected port group (%#02x)", 0x100)
}
