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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/anabate123/86Box/modalflag"
	"github.com/anabate123/86Box/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})
	md.AddSubModes("MONITOR", "VERSION")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// no mode argument given so the default (first) sub-mode is selected
	test.Equate(t, md.Mode(), "MONITOR")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"version"})
	md.AddSubModes("MONITOR", "VERSION")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// sub-mode comparison is case insensitive
	test.Equate(t, md.Mode(), "VERSION")
	test.Equate(t, md.Path(), "VERSION")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-board", "ev159", "-log"})

	board := md.AddString("board", "ibmxt", "board type")
	log := md.AddBool("log", false, "echo log")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, *board, "ev159")
	test.Equate(t, *log, true)

	visited := 0
	md.Visit(func(flag string) {
		visited++
	})
	test.Equate(t, visited, 2)
}

func TestUnrecognisedFlag(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-wibble"})

	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, int(p), int(modalflag.ParseError))
}
