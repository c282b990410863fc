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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/anabate123/86Box/hardware"
	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/hardware/isamem"
	"github.com/anabate123/86Box/logger"
	"github.com/anabate123/86Box/modalflag"
	"github.com/anabate123/86Box/monitor"
	"github.com/anabate123/86Box/monitor/terminal"
	"github.com/anabate123/86Box/monitor/terminal/colorterm"
	"github.com/anabate123/86Box/monitor/terminal/plainterm"
	"github.com/anabate123/86Box/statsview"
	"github.com/anabate123/86Box/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("MONITOR", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "MONITOR":
		err = launchMonitor(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// catalogue returns the list of board variants, for help text.
func catalogue() string {
	s := strings.Builder{}
	s.WriteString("available board variants:\n")
	for _, spec := range isamem.List() {
		s.WriteString(fmt.Sprintf("  %-10s %s\n", spec.InternalName, spec.Name))
	}
	return s.String()
}

func launchMonitor(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(catalogue())

	board := md.AddString("board", "ev159", "board variant to attach")
	size := md.AddInt("size", 0, "fitted RAM in KB")
	start := md.AddInt("start", 0, "start address of contiguous RAM in KB")
	length := md.AddInt("length", 0, "amount of contiguous RAM in KB")
	base := md.AddString("base", "", "I/O base address (hex)")
	frame := md.AddString("frame", "", "EMS frame address (hex)")
	width := md.AddInt("width", 0, "transfer width option")
	speed := md.AddInt("speed", 0, "transfer speed option")
	ems := md.AddBool("ems", false, "enable EMS")
	at := md.AddBool("at", false, "AT-class bus (24-bit addressing, 16-bit transfers)")
	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	// only the options given on the command line are passed to the board.
	// everything else falls back to the variant's defaults
	opts := device.Options{}
	var flagErr error
	md.Visit(func(flag string) {
		switch flag {
		case "size":
			opts["size"] = *size
		case "start":
			opts["start"] = *start
		case "length":
			opts["length"] = *length
		case "width":
			opts["width"] = *width
		case "speed":
			opts["speed"] = *speed
		case "ems":
			if *ems {
				opts["ems"] = 1
			}
		case "base":
			v, err := device.ParseNumber(*base)
			if err != nil {
				flagErr = err
				return
			}
			opts["base"] = int(v)
		case "frame":
			v, err := device.ParseNumber(*frame)
			if err != nil {
				flagErr = err
				return
			}
			opts["frame"] = int(v)
		}
	})
	if flagErr != nil {
		return flagErr
	}

	mc := hardware.NewMachine(*at)
	brd, err := mc.AttachBoard(*board, opts)
	if err != nil {
		return err
	}
	defer mc.DetachBoards()

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	fmt.Println(brd.Name())
	return monitor.NewMonitor(mc, term).Run()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
