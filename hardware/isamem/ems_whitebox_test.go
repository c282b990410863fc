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

package isamem

import (
	"testing"

	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/hardware/memory"
	"github.com/anabate123/86Box/hardware/ports"
	"github.com/anabate123/86Box/test"
)

// the pool is placed after the contiguous regions in the arena, and page
// selection resolves to the expected arena offset.
func TestArenaArithmetic(t *testing.T) {
	mem := memory.NewMemory()
	prt := ports.NewPorts()

	brd, err := Attach(mem, prt, false, Lookup("ev159"), device.Options{
		"size": 1024, "start": 256, "length": 384, "ems": 1,
	})
	test.ExpectedSuccess(t, err)

	// 384KB of contiguous memory precedes the pool in the arena
	test.Equate(t, brd.emsStart, 0x60000)
	test.Equate(t, brd.emsPages, 40)

	prt.Outb(0x259, 0x01)
	prt.Outb(0x8258, 0x85)

	vp := &brd.ems[2]
	test.Equate(t, vp.pageOffset, 0x60000+5*emsPageSize)

	// the viewport mapping is rebound over the selected page
	test.Equate(t, len(vp.mapping.Backing()), emsPageSize)
	test.ExpectedSuccess(t, &vp.mapping.Backing()[0] == &brd.ram[vp.pageOffset])

	// a write through the frame lands at the resolved arena offset
	mem.Write8(0xe8001, 0x42)
	test.Equate(t, brd.ram[vp.pageOffset+1], 0x42)
}

// a board with more RAM than EMS 3.2 can expose caps the pool at 2048KB.
func TestPoolCap(t *testing.T) {
	mem := memory.NewMemory()
	prt := ports.NewPorts()

	brd, err := Attach(mem, prt, false, Lookup("ev159"), device.Options{
		"size": 3072, "start": 0, "ems": 1,
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, brd.emsSizeKB, 2048)
	test.Equate(t, brd.emsPages, 128)
}

// 16-bit transfers through a viewport read and write the arena little-endian.
func TestWideViewport(t *testing.T) {
	mem := memory.NewMemory()
	prt := ports.NewPorts()

	brd, err := Attach(mem, prt, true, Lookup("ev159"), device.Options{
		"size": 512, "start": 0, "ems": 1, "width": 1,
	})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, brd.wide)

	prt.Outb(0x259, 0x01)
	prt.Outb(0x258, 0x80)

	mem.Write16(0xe0000, 0xbeef)
	test.Equate(t, brd.ram[brd.emsStart], 0xef)
	test.Equate(t, brd.ram[brd.emsStart+1], 0xbe)
	test.Equate(t, mem.Read16(0xe0000), 0xbeef)
}
