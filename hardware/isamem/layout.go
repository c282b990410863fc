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
	"github.com/anabate123/86Box/hardware/memory"
	"github.com/anabate123/86Box/logger"
)

// layout carves the board's RAM arena into bus regions. tot is the number of
// bytes to use as contiguous memory; what is left over feeds the EMS pool.
//
// three cursors walk in lockstep: tot counts down the contiguous bytes still
// to place, addr is the bus address where the next region goes, and off is
// the arena offset backing it. k tracks the bytes reserved for EMS.
func (brd *Board) layout(at bool, tot uint32) {
	k := uint32(brd.totalSize) << 10
	addr := brd.startAddr
	var off uint32

	if addr > 0 && tot > 0 {
		// this much of the arena will not be available for EMS
		k -= tot

		// expand conventional memory first. it can extend up to the 640KB
		// boundary
		var t uint32
		if addr < topMemory {
			t = topMemory - addr
			if t > tot {
				t = tot
			}
			logger.Logf(logger.Allow, "isamem", "RAM at %dKB (%dKB)", addr>>10, t>>10)
			brd.lowMapping = brd.mapRegion(addr, t, off, brd.wide)
			brd.mem.SetState(addr, t, memory.StateExternal)
			off += t
			tot -= t
			addr += t
		}

		// if we are at the top of conventional memory with at least 384KB
		// still to place, the next 384KB goes into the shared upper-memory
		// remap window, registered above the region it shadows and disabled
		// until the system enables remapping
		if addr == topMemory && tot >= umaSize {
			t = uint32(umaSize)
			logger.Logf(logger.Allow, "isamem", "RAM at %dKB (%dKB, remap)", (addr+tot)>>10, t>>10)
			r := &region{ram: brd.ram, base: addr + tot, offset: off}
			mp := brd.mem.ClaimRemap(addr+tot, t, r.read8, r.read16, r.write8, r.write16, brd.ram[off:off+t], memory.FlagExternal)
			mp.Disable()
			brd.remapMapping = mp
			brd.mappings = append(brd.mappings, mp)
			brd.mem.SetState(addr+tot, t, memory.StateExternal)
			off += t
			tot -= t
			addr += t
		}

		// the remainder of the contiguous memory is extended memory, only
		// reachable on buses that can address above 1MB
		if at && addr > 0 && tot > 0 {
			t = tot
			logger.Logf(logger.Allow, "isamem", "RAM at %dKB (%dKB, extended)", addr>>10, t>>10)
			brd.highMapping = brd.mapRegion(addr, t, off, true)
			brd.mem.SetState(addr, t, memory.StateExternal)
			off += t
			tot -= t
			addr += t
		}
	}

	// whatever was reserved becomes the EMS page pool, up to the limit of
	// the EMS 3.2 specification
	if brd.emsEnabled {
		t := k
		if t > maxEMS {
			t = maxEMS
		}
		brd.emsStart = off
		brd.emsSizeKB = int(t >> 10)
		brd.emsPages = int(t / emsPageSize)
		brd.attachEMS()
	}
}

// mapRegion registers one contiguous window over the arena. word handlers are
// registered only for wide regions.
func (brd *Board) mapRegion(base uint32, size uint32, off uint32, wide bool) *memory.Mapping {
	r := &region{ram: brd.ram, base: base, offset: off}

	var r16 memory.Read16
	var w16 memory.Write16
	if wide {
		r16 = r.read16
		w16 = r.write16
	}

	mp := brd.mem.Map(base, size, r.read8, r16, r.write8, w16, brd.ram[off:off+size], memory.FlagExternal)
	brd.mappings = append(brd.mappings, mp)
	return mp
}
