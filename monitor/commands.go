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
	"fmt"
	"os"
	"strings"

	"github.com/anabate123/86Box/curated"
	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/logger"
	"github.com/anabate123/86Box/monitor/terminal"
	"github.com/bradleyjkemp/memviz"
)

// bytes shown per row of PEEK output.
const peekRowLength = 16

var helpText = []string{
	"PEEK addr [count]   read count bytes of memory (default 1)",
	"POKE addr val...    write bytes to memory",
	"PEEKW addr          read a 16-bit word",
	"POKEW addr val      write a 16-bit word",
	"IN port             read an I/O port",
	"OUT port val        write an I/O port",
	"MAP                 list the registered memory mappings",
	"BOARD               describe the attached expansion boards",
	"LOG                 show the contents of the central log",
	"VIZ [file]          write a graph of the machine state (default memory.dot)",
	"HELP                this",
	"QUIT                leave the monitor",
	"",
	"numbers are hexadecimal. 0x40000, 40000 and 40000H all mean the same",
}

// parseInput runs one line of user input. the returned bool indicates that
// the user wants to leave the monitor.
func (mon *Monitor) parseInput(input string) (bool, error) {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return false, nil
	}

	mon.term.TermPrintLine(terminal.StyleEcho, input)

	switch strings.ToUpper(toks[0]) {
	case "PEEK":
		return false, mon.peek(toks[1:])
	case "POKE":
		return false, mon.poke(toks[1:])
	case "PEEKW":
		return false, mon.peekw(toks[1:])
	case "POKEW":
		return false, mon.pokew(toks[1:])
	case "IN":
		return false, mon.in(toks[1:])
	case "OUT":
		return false, mon.out(toks[1:])
	case "MAP":
		return false, mon.listMappings()
	case "BOARD":
		return false, mon.listBoards()
	case "LOG":
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				mon.term.TermPrintLine(terminal.StyleLog, strings.TrimSuffix(e.String(), "\n"))
			}
		})
		return false, nil
	case "VIZ":
		return false, mon.viz(toks[1:])
	case "HELP":
		for _, s := range helpText {
			mon.term.TermPrintLine(terminal.StyleHelp, s)
		}
		return false, nil
	case "QUIT", "EXIT", "Q":
		return true, nil
	}

	return false, curated.Errorf("unrecognised command (%s)", toks[0])
}

func (mon *Monitor) peek(args []string) error {
	if len(args) < 1 {
		return curated.Errorf("PEEK: address required")
	}
	addr, err := device.ParseNumber(args[0])
	if err != nil {
		return err
	}

	count := uint32(1)
	if len(args) > 1 {
		count, err = device.ParseNumber(args[1])
		if err != nil {
			return err
		}
	}

	for count > 0 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%06X ", addr))
		for i := 0; i < peekRowLength && count > 0; i++ {
			s.WriteString(fmt.Sprintf(" %02X", mon.mc.Mem.Read8(addr)))
			addr++
			count--
		}
		mon.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
	return nil
}

func (mon *Monitor) poke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf("POKE: address and value required")
	}
	addr, err := device.ParseNumber(args[0])
	if err != nil {
		return err
	}
	for _, a := range args[1:] {
		v, err := device.ParseNumber(a)
		if err != nil {
			return err
		}
		mon.mc.Mem.Write8(addr, uint8(v))
		addr++
	}
	return nil
}

func (mon *Monitor) peekw(args []string) error {
	if len(args) < 1 {
		return curated.Errorf("PEEKW: address required")
	}
	addr, err := device.ParseNumber(args[0])
	if err != nil {
		return err
	}
	mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%06X  %04X", addr, mon.mc.Mem.Read16(addr)))
	return nil
}

func (mon *Monitor) pokew(args []string) error {
	if len(args) < 2 {
		return curated.Errorf("POKEW: address and value required")
	}
	addr, err := device.ParseNumber(args[0])
	if err != nil {
		return err
	}
	v, err := device.ParseNumber(args[1])
	if err != nil {
		return err
	}
	mon.mc.Mem.Write16(addr, uint16(v))
	return nil
}

func (mon *Monitor) in(args []string) error {
	if len(args) < 1 {
		return curated.Errorf("IN: port required")
	}
	port, err := device.ParseNumber(args[0])
	if err != nil {
		return err
	}
	mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%04X  %02X", uint16(port), mon.mc.Ports.Inb(uint16(port))))
	return nil
}

func (mon *Monitor) out(args []string) error {
	if len(args) < 2 {
		return curated.Errorf("OUT: port and value required")
	}
	port, err := device.ParseNumber(args[0])
	if err != nil {
		return err
	}
	v, err := device.ParseNumber(args[1])
	if err != nil {
		return err
	}
	mon.mc.Ports.Outb(uint16(port), uint8(v))
	return nil
}

func (mon *Monitor) listMappings() error {
	mps := mon.mc.Mem.Mappings()
	if len(mps) == 0 {
		mon.term.TermPrintLine(terminal.StyleFeedback, "no memory mappings")
		return nil
	}
	for _, mp := range mps {
		state := "enabled"
		if !mp.IsEnabled() {
			state = "disabled"
		}
		note := ""
		if mp == mon.mc.Mem.RemapWindow() {
			note = " (remap window)"
		}
		mon.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("%06X-%06X  %s%s", mp.Base(), mp.Base()+mp.Size()-1, state, note))
	}
	return nil
}

func (mon *Monitor) listBoards() error {
	brds := mon.mc.Boards()
	if len(brds) == 0 {
		mon.term.TermPrintLine(terminal.StyleFeedback, "no boards attached")
		return nil
	}
	for _, brd := range brds {
		mon.term.TermPrintLine(terminal.StyleFeedback, brd.String())
	}
	return nil
}

// viz writes a graphviz rendering of the machine state, which is a handy way
// of seeing how the mappings and viewports hang together.
func (mon *Monitor) viz(args []string) error {
	fn := "memory.dot"
	if len(args) > 0 {
		fn = args[0]
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("VIZ: %v", err)
	}
	defer f.Close()

	memviz.Map(f, mon.mc)
	mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("written %s", fn))
	return nil
}
