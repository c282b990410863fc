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
	"fmt"
	"strings"

	"github.com/anabate123/86Box/hardware/memory"
	"github.com/anabate123/86Box/logger"
)

// register offsets inside each viewport's port pair.
const (
	regPageSelect = 0
	regFrame      = 1
)

// page select register layout.
const (
	pageEnable = 0x80
	pageMask   = 0x7f
)

// attachEMS registers the four viewport windows in the upper memory frame and
// a control register pair for each. the windows start out disabled; nothing
// is visible until the guest selects a page.
func (brd *Board) attachEMS() {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("EMS: %dKB (%d pages), i/o %04XH", brd.emsSizeKB, brd.emsPages, brd.baseAddr))
	if brd.frameAddr > 0 {
		s.WriteString(fmt.Sprintf(", frame %05XH", brd.frameAddr))
	}
	logger.Log(logger.Allow, "isamem", s.String())

	for i := 0; i < numViewports; i++ {
		vp := &brd.ems[i]

		var r16 memory.Read16
		var w16 memory.Write16
		if brd.wide {
			r16 = brd.emsRead16
			w16 = brd.emsWrite16
		}

		mp := brd.mem.Map(brd.frameAddr+uint32(i)*emsPageSize, emsPageSize, brd.emsRead8, r16, brd.emsWrite8, w16, nil, memory.FlagExternal)
		mp.Disable()
		vp.mapping = mp
		brd.mappings = append(brd.mappings, mp)

		// the register pairs sit at 16KB intervals above the base port.
		// the addition wraps in the 16-bit port space, which is how the
		// hardware decodes it
		brd.portHandlers = append(brd.portHandlers, brd.prt.Attach(brd.baseAddr+uint16(i*emsPageSize), 2, brd.portRead, brd.portWrite))
	}
}

// the viewport a frame address falls in. the four windows tile one 64KB
// frame, so the low 16 bits of the address are enough to tell them apart.
func (brd *Board) frameViewport(addr uint32) *viewport {
	return &brd.ems[(addr&0xffff)/emsPageSize]
}

// the viewport a control port belongs to. register pairs are spaced 16KB
// apart so the quotient identifies the viewport and the remainder the
// register.
func (brd *Board) portViewport(port uint16) (*viewport, uint16) {
	return &brd.ems[port/emsPageSize], (port & (emsPageSize - 1)) - brd.baseAddr
}

func (brd *Board) emsRead8(addr uint32) uint8 {
	vp := brd.frameViewport(addr)
	return brd.ram[vp.pageOffset+(addr-vp.mapping.Base())]
}

func (brd *Board) emsRead16(addr uint32) uint16 {
	vp := brd.frameViewport(addr)
	i := vp.pageOffset + (addr - vp.mapping.Base())
	return uint16(brd.ram[i]) | uint16(brd.ram[i+1])<<8
}

func (brd *Board) emsWrite8(addr uint32, data uint8) {
	vp := brd.frameViewport(addr)
	brd.ram[vp.pageOffset+(addr-vp.mapping.Base())] = data
}

func (brd *Board) emsWrite16(addr uint32, data uint16) {
	vp := brd.frameViewport(addr)
	i := vp.pageOffset + (addr - vp.mapping.Base())
	brd.ram[i] = uint8(data)
	brd.ram[i+1] = uint8(data >> 8)
}

// portRead handles a read of one of the EMS control registers.
func (brd *Board) portRead(port uint16) uint8 {
	vp, reg := brd.portViewport(port)

	switch reg {
	case regPageSelect:
		data := vp.page
		if vp.enabled {
			data |= pageEnable
		}
		return data

	case regFrame:
		// write-only register
	}

	return 0xff
}

// portWrite handles a write to one of the EMS control registers.
func (brd *Board) portWrite(port uint16, data uint8) {
	vp, reg := brd.portViewport(port)

	switch reg {
	case regPageSelect:
		vp.enabled = data&pageEnable == pageEnable
		vp.page = data & pageMask

		// the write is recorded, but it has no effect on the frame until
		// the board has been configured
		if !brd.configured {
			vp.enabled = false
			return
		}

		if int(vp.page) < brd.emsPages {
			vp.pageOffset = brd.emsStart + uint32(vp.page)*emsPageSize
		} else {
			// that page does not exist
			vp.enabled = false
		}

		if vp.enabled {
			vp.mapping.Rebind(brd.ram[vp.pageOffset : vp.pageOffset+emsPageSize])
			vp.mapping.Enable()
		} else {
			vp.mapping.Disable()
		}

	case regFrame:
		vp.frame = data

		// any nonzero frame value tells us the driver has configured the
		// board
		if data != 0 {
			brd.configured = true
		}
	}
}
