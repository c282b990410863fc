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

package hardware_test

import (
	"testing"

	"github.com/anabate123/86Box/hardware"
	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/test"
)

func TestAttachBoard(t *testing.T) {
	mc := hardware.NewMachine(false)

	brd, err := mc.AttachBoard("ev159", device.Options{"size": 512, "ems": 1})
	test.ExpectedSuccess(t, err)
	test.Equate(t, brd.EMSPages(), 32)
	test.Equate(t, len(mc.Boards()), 1)

	_, err = mc.AttachBoard("wibble", nil)
	test.ExpectedFailure(t, err)
}

func TestReset(t *testing.T) {
	mc := hardware.NewMachine(true)

	err := mc.Reset([]hardware.BoardSlot{
		{Board: "ibmat", Options: device.Options{"size": 512, "start": 512}},
		{Board: "none"},
		{Board: ""},
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(mc.Boards()), 1)

	// a reset detaches whatever was there before
	err = mc.Reset([]hardware.BoardSlot{
		{Board: "ev159", Options: device.Options{"size": 512, "ems": 1}},
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(mc.Boards()), 1)
	test.Equate(t, mc.Boards()[0].Spec().InternalName, "ev159")

	// a board that fails to attach fails the reset
	err = mc.Reset([]hardware.BoardSlot{
		{Board: "ev159", Options: device.Options{"size": 0}},
	})
	test.ExpectedFailure(t, err)
}
