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

package colorterm

import (
	"github.com/anabate123/86Box/curated"
	"github.com/anabate123/86Box/monitor/terminal"
	"github.com/anabate123/86Box/monitor/terminal/colorterm/easyterm/ansi"
)

// keypresses of interest while in raw mode.
const (
	keyInterrupt      = 3
	keyBackspace      = 8
	keyNewline        = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// TermRead implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	input := make([]byte, 0, 255)

	// history cursor. len(ct.history) means the line being typed
	hist := len(ct.history)

	render := func() {
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.Bold)
		ct.TermPrint(prompt)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
	}
	render()

	buffer := make([]byte, 8)
	for {
		n, err := ct.EasyTerm.TermRead(buffer)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}

		switch buffer[0] {
		case keyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyCarriageReturn, keyNewline:
			ct.TermPrint("\n")
			s := string(input)
			ct.remember(s)
			return s, nil

		case keyBackspace, keyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}

		case keyEsc:
			// cursor up and down walk the command history. other escape
			// sequences are swallowed
			if n >= 3 && buffer[1] == '[' {
				switch buffer[2] {
				case 'A':
					if hist > 0 {
						hist--
						input = append(input[:0], ct.history[hist]...)
					}
				case 'B':
					if hist < len(ct.history)-1 {
						hist++
						input = append(input[:0], ct.history[hist]...)
					} else {
						hist = len(ct.history)
						input = input[:0]
					}
				}
			}

		default:
			for _, c := range buffer[:n] {
				if c >= 32 && c < 127 {
					input = append(input, c)
				}
			}
		}

		render()
	}
}
