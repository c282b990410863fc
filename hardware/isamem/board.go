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

	"github.com/anabate123/86Box/curated"
	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/hardware/memory"
	"github.com/anabate123/86Box/hardware/ports"
	"github.com/anabate123/86Box/logger"
)

// memory geometry of the 8086/80286 address space.
const (
	// top of conventional memory
	topMemory = 640 << 10

	// size of the upper memory area between 640KB and 1MB
	umaSize = 384 << 10

	// EMS 3.2 limits
	maxEMS       = 2048 << 10
	emsPageSize  = 16 << 10
	numViewports = 4
)

// sentinal errors returned by the Attach() function.
const (
	NoRAM        = "isamem: %s: no RAM fitted"
	LengthError  = "isamem: %s: contiguous size (%dKB) exceeds fitted RAM (%dKB)"
	UnknownBoard = "isamem: unknown board type (%s)"
)

// viewport is one of the four bank-switched EMS windows in the upper memory
// frame.
type viewport struct {
	enabled bool

	// last values written to the two control registers
	page  uint8
	frame uint8

	// arena offset of the start of the selected page. valid only while
	// enabled is true
	pageOffset uint32

	mapping *memory.Mapping
}

// Board is a memory expansion board attached to the system buses. Instances
// are created with the Attach() function.
type Board struct {
	spec *Spec

	mem *memory.Memory
	prt *ports.Ports

	// the fitted RAM. every mapped region of the board resolves into this
	// arena
	ram []byte

	// option values read at attach time
	totalSize int // KB
	startAddr uint32
	baseAddr  uint16
	frameAddr uint32
	wide      bool
	fast      bool

	// ems is the EMS controller state. emsEnabled reflects the physical
	// jumper; configured flips when the guest writes a nonzero value to a
	// frame register
	emsEnabled bool
	configured bool
	emsStart   uint32
	emsSizeKB  int
	emsPages   int
	ems        [numViewports]viewport

	// the contiguous memory regions, when present
	lowMapping   *memory.Mapping
	remapMapping *memory.Mapping
	highMapping  *memory.Mapping

	// everything registered on the buses, for Detach()
	mappings     []*memory.Mapping
	portHandlers []*ports.Handler

	attached bool
}

// Attach creates a Board from a variant Spec and a set of option values, and
// registers it on the memory and port buses. at indicates an AT-class bus,
// with 24-bit addressing and 16-bit transfers.
func Attach(mem *memory.Memory, prt *ports.Ports, at bool, spec *Spec, opts device.Options) (*Board, error) {
	if spec == nil {
		return nil, curated.Errorf(UnknownBoard, "nil")
	}

	cfg := device.NewConfig(spec.Options, opts)

	brd := &Board{
		spec: spec,
		mem:  mem,
		prt:  prt,
	}

	brd.totalSize = cfg.Int("size")
	brd.startAddr = uint32(cfg.Int("start")) << 10
	brd.baseAddr = cfg.Hex16("base")
	if spec.fixedFrame != 0 {
		brd.frameAddr = spec.fixedFrame
	} else {
		brd.frameAddr = cfg.Hex20("frame")
	}
	brd.wide = spec.presetWide || (spec.wideOn != 0 && cfg.Int("width") == spec.wideOn)
	brd.fast = spec.presetFast || cfg.Bool("speed")
	brd.emsEnabled = spec.presetEMS || cfg.Bool("ems")
	brd.configured = spec.presetConfigured

	// how much of the fitted RAM is contiguous memory rather than EMS pool
	totKB := 0
	if spec.hasLength {
		totKB = cfg.Int("length")
	} else if spec.contiguous {
		totKB = brd.totalSize
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %dKB", spec.Name, brd.totalSize))
	if totKB > 0 && totKB != brd.totalSize {
		s.WriteString(fmt.Sprintf(", %dKB contiguous", totKB))
	}
	if brd.fast {
		s.WriteString(", FAST")
	}
	if brd.wide {
		s.WriteString(", 16BIT")
	}
	logger.Log(logger.Allow, "isamem", s.String())

	// a 16-bit board in an 8-bit slot works, but only half its data lines
	// are connected
	if brd.wide && !at {
		brd.wide = false
		logger.Log(logger.Allow, "isamem", "not an AT-class bus, forcing 8-bit transfers")
	}

	if brd.totalSize <= 0 {
		return nil, curated.Errorf(NoRAM, spec.InternalName)
	}

	// the contiguous regions are carved from the same arena as the EMS
	// pool, so they cannot ask for more than is fitted
	if totKB > brd.totalSize {
		return nil, curated.Errorf(LengthError, spec.InternalName, totKB, brd.totalSize)
	}

	brd.ram = make([]byte, brd.totalSize<<10)

	brd.layout(at, uint32(totKB)<<10)

	brd.attached = true
	return brd, nil
}

// Detach unregisters the board from the memory and port buses and releases
// its RAM. Detaching twice is a no-op.
func (brd *Board) Detach() {
	if !brd.attached {
		return
	}
	for _, h := range brd.portHandlers {
		brd.prt.Remove(h)
	}
	brd.portHandlers = nil
	for _, mp := range brd.mappings {
		brd.mem.Delete(mp)
	}
	brd.mappings = nil
	brd.lowMapping = nil
	brd.remapMapping = nil
	brd.highMapping = nil
	for i := range brd.ems {
		brd.ems[i] = viewport{}
	}
	brd.ram = nil
	brd.attached = false
}

// Spec returns the variant descriptor the board was built from.
func (brd *Board) Spec() *Spec {
	return brd.spec
}

// Name returns the full name of the board variant.
func (brd *Board) Name() string {
	return brd.spec.Name
}

// TotalSize returns the amount of RAM fitted to the board, in KB.
func (brd *Board) TotalSize() int {
	return brd.totalSize
}

// IsWide returns whether the board performs 16-bit transfers.
func (brd *Board) IsWide() bool {
	return brd.wide
}

// IsConfigured returns whether the guest has configured the EMS controller by
// writing a nonzero value to a frame register.
func (brd *Board) IsConfigured() bool {
	return brd.configured
}

// EMSPages returns the number of 16KB pages in the board's EMS pool. Zero for
// boards without EMS.
func (brd *Board) EMSPages() int {
	return brd.emsPages
}

// EMSSize returns the size of the board's EMS pool in KB.
func (brd *Board) EMSSize() int {
	return brd.emsSizeKB
}

// Viewport returns the current state of one of the four EMS viewports.
func (brd *Board) Viewport(n int) (enabled bool, page uint8) {
	vp := &brd.ems[n]
	return vp.enabled, vp.page
}

func (brd *Board) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %dKB", brd.spec.Name, brd.totalSize))
	if brd.fast {
		s.WriteString(", fast")
	}
	if brd.wide {
		s.WriteString(", 16-bit")
	}
	if brd.lowMapping != nil {
		s.WriteString(fmt.Sprintf("\n  low:  %05XH-%05XH", brd.lowMapping.Base(), brd.lowMapping.Base()+brd.lowMapping.Size()-1))
	}
	if brd.remapMapping != nil {
		s.WriteString(fmt.Sprintf("\n  uma:  %05XH-%05XH (remap, disabled)", brd.remapMapping.Base(), brd.remapMapping.Base()+brd.remapMapping.Size()-1))
	}
	if brd.highMapping != nil {
		s.WriteString(fmt.Sprintf("\n  high: %06XH-%06XH", brd.highMapping.Base(), brd.highMapping.Base()+brd.highMapping.Size()-1))
	}
	if brd.emsEnabled {
		s.WriteString(fmt.Sprintf("\n  ems:  %dKB (%d pages), i/o %04XH, frame %05XH", brd.emsSizeKB, brd.emsPages, brd.baseAddr, brd.frameAddr))
		if !brd.configured {
			s.WriteString(" [not configured]")
		}
		for i := range brd.ems {
			vp := &brd.ems[i]
			if vp.enabled {
				s.WriteString(fmt.Sprintf("\n  viewport %d: page %d", i, vp.page))
			} else {
				s.WriteString(fmt.Sprintf("\n  viewport %d: disabled (page %d)", i, vp.page))
			}
		}
	}
	return s.String()
}
