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

package monitor

import (
	"errors"
	"io"

	"github.com/anabate123/86Box/curated"
	"github.com/anabate123/86Box/hardware"
	"github.com/anabate123/86Box/monitor/terminal"
)

const prompt = "] "

// Monitor connects a terminal to the emulated machine.
type Monitor struct {
	mc   *hardware.Machine
	term terminal.Terminal
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *hardware.Machine, term terminal.Terminal) *Monitor {
	return &Monitor{
		mc:   mc,
		term: term,
	}
}

// Run is the monitor's input loop. It returns when the user quits or when
// the input source is exhausted.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer mon.term.CleanUp()

	for {
		input, err := mon.term.TermRead(prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		quit, err := mon.parseInput(input)
		if err != nil {
			mon.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if quit {
			return nil
		}
	}
}
