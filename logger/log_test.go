// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/anabate123/86Box/logger"
	"github.com/anabate123/86Box/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.Len(), 0)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	s.Reset()
	logger.Logf(logger.Allow, "test", "this is test %03d", 2)
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test: this is test 002\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "same entry")
	logger.Log(logger.Allow, "test", "same entry")
	logger.Log(logger.Allow, "test", "same entry")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: same entry (repeat x3)\n")

	// a different entry breaks the fold
	logger.Log(logger.Allow, "test", "different entry")
	logger.BorrowLog(func(entries []logger.Entry) {
		test.Equate(t, len(entries), 2)
	})
}

func TestEcho(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.SetEcho(s, false)
	defer logger.SetEcho(nil, false)

	logger.Log(logger.Allow, "test", "echoed entry")
	test.Equate(t, s.String(), "test: echoed entry\n")
}
