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

// Package colorterm implements the Terminal interface for the monitor. It
// supports color output and command history, and runs the terminal in raw
// mode while reading.
package colorterm

import (
	"os"

	"github.com/anabate123/86Box/monitor/terminal/colorterm/easyterm"
)

const maxHistory = 50

// ColorTerminal implements the monitor's Terminal interface with a basic
// ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	history  []string
	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.history = make([]string, 0, maxHistory)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

func (ct *ColorTerminal) remember(input string) {
	if input == "" {
		return
	}
	if len(ct.history) > 0 && ct.history[len(ct.history)-1] == input {
		return
	}
	if len(ct.history) >= maxHistory {
		ct.history = ct.history[1:]
	}
	ct.history = append(ct.history, input)
}
