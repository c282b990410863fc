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

// Package plainterm implements the Terminal interface for the monitor. It is
// as simple as simple can be and offers no special features. It works over
// any reader/writer pair, which also makes it the terminal of choice for
// scripts and for tests.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/anabate123/86Box/monitor/terminal"
)

// PlainTerminal is the most basic terminal implementation. It leaves the
// terminal in whatever mode it started in, probably cooked mode, and so
// offers only rudimentary editing facility and no control over output.
type PlainTerminal struct {
	// both may be assigned before Initialise(). when left nil the standard
	// streams are used
	Input  io.Reader
	Output io.Writer

	scanner  *bufio.Scanner
	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	if pt.Input == nil {
		pt.Input = os.Stdin
	}
	if pt.Output == nil {
		pt.Output = os.Stdout
	}
	pt.scanner = bufio.NewScanner(pt.Input)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermRead implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if !pt.silenced {
		fmt.Fprint(pt.Output, prompt)
	}
	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return pt.scanner.Text(), nil
}

// TermPrintLine implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// no need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprintln(pt.Output, s)
}
