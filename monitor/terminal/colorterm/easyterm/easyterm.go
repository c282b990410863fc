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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it wraps
// termios methods in functions with friendlier names and keeps hold of the
// attribute sets needed to flip the terminal between canonical and raw mode.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the base terminal type. Embed it to get access to the terminal
// mode and printing functions.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// attributes as they were at Initialise(), and the raw mode attributes
	// derived from them
	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the terminal over the given file pair. The terminal is left in
// the mode it was found in.
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	et.input = input
	et.output = output

	if err := termios.Tcgetattr(input.Fd(), &et.canAttr); err != nil {
		return err
	}

	et.rawAttr = et.canAttr
	et.rawAttr.Lflag &^= unix.ICANON | unix.ECHO
	et.rawAttr.Cc[unix.VMIN] = 1
	et.rawAttr.Cc[unix.VTIME] = 0

	return nil
}

// CleanUp returns the terminal to the mode it was found in.
func (et *EasyTerm) CleanUp() {
	_ = et.CanonicalMode()
}

// RawMode puts the terminal into raw mode: no echo, no line buffering.
func (et *EasyTerm) RawMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// CanonicalMode puts the terminal into the mode it was found in.
func (et *EasyTerm) CanonicalMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// TermPrint writes a string to the terminal with no further interpretation.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// TermRead fills the buffer with the next chunk of terminal input. In raw
// mode this returns after every keypress (escape sequences arrive as one
// chunk).
func (et *EasyTerm) TermRead(buffer []byte) (int, error) {
	return et.input.Read(buffer)
}

// Geometry returns the width and height of the terminal in characters. The
// returned values are zero if the geometry cannot be read.
func (et *EasyTerm) Geometry() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Col), int(ws.Row)
}
