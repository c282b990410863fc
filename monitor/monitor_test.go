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

package monitor_test

import (
	"strings"
	"testing"

	"github.com/anabate123/86Box/hardware"
	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/monitor"
	"github.com/anabate123/86Box/monitor/terminal/plainterm"
	"github.com/anabate123/86Box/test"
)

// run the monitor over a script and return what it printed.
func runScript(t *testing.T, mc *hardware.Machine, script ...string) string {
	t.Helper()

	out := &strings.Builder{}
	term := &plainterm.PlainTerminal{
		Input:  strings.NewReader(strings.Join(script, "\n")),
		Output: out,
	}

	mon := monitor.NewMonitor(mc, term)
	test.ExpectedSuccess(t, mon.Run())

	return out.String()
}

func TestPeekPoke(t *testing.T) {
	mc := hardware.NewMachine(false)
	_, err := mc.AttachBoard("ev159", device.Options{"size": 1024, "start": 256, "length": 384, "ems": 1})
	test.ExpectedSuccess(t, err)

	out := runScript(t, mc,
		"POKE 40000 AA BB",
		"PEEK 40000 2",
		"QUIT",
	)
	test.ExpectedSuccess(t, strings.Contains(out, "040000  AA BB"))
}

// drive the EMS registers the way a driver would and look at the result
// through the frame.
func TestEMSFromTheMonitor(t *testing.T) {
	mc := hardware.NewMachine(false)
	_, err := mc.AttachBoard("ev159", device.Options{"size": 512, "ems": 1})
	test.ExpectedSuccess(t, err)

	out := runScript(t, mc,
		"OUT 259 01",
		"OUT 8258 85",
		"IN 8258",
		"POKE E8000 42",
		"PEEK E8000",
		"QUIT",
	)
	test.ExpectedSuccess(t, strings.Contains(out, "8258  85"))
	test.ExpectedSuccess(t, strings.Contains(out, "0E8000  42"))
}

func TestBoardAndMap(t *testing.T) {
	mc := hardware.NewMachine(false)
	_, err := mc.AttachBoard("ev159", device.Options{"size": 512, "ems": 1})
	test.ExpectedSuccess(t, err)

	out := runScript(t, mc, "BOARD", "MAP", "QUIT")
	test.ExpectedSuccess(t, strings.Contains(out, "Everex EV-159"))
	test.ExpectedSuccess(t, strings.Contains(out, "0E0000-0E3FFF  disabled"))
}

func TestBadNumber(t *testing.T) {
	out := runScript(t, hardware.NewMachine(false), "PEEK WIBBLE", "QUIT")
	test.ExpectedSuccess(t, strings.Contains(out, "* not a number (WIBBLE)"))
}

func TestUnrecognisedCommand(t *testing.T) {
	out := runScript(t, hardware.NewMachine(false), "WOBBLE", "QUIT")
	test.ExpectedSuccess(t, strings.Contains(out, "* unrecognised command (WOBBLE)"))
}

// running out of input is the same as quitting.
func TestEOF(t *testing.T) {
	out := runScript(t, hardware.NewMachine(false), "BOARD")
	test.ExpectedSuccess(t, strings.Contains(out, "no boards attached"))
}
