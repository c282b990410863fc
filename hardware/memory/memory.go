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

package memory

import (
	"github.com/anabate123/86Box/logger"
)

// State values for the memory state decoder.
type State int

// List of valid State values.
const (
	// the address range is handled by host-default memory
	StateInternal State = iota

	// the address range is backed by RAM on an expansion device
	StateExternal
)

// granularity of the memory state decoder.
const statePageSize = 0x4000

// value returned by a read of an unmapped address.
const unmappedData = 0xff

// Memory is the physical memory bus. Access dispatch is strictly
// single-threaded; the type carries no locking.
type Memory struct {
	mappings []*Mapping

	// state decoder, keyed by address divided by statePageSize
	states map[uint32]State

	// the shared upper-memory remap window. nil until a device claims it
	remap *Mapping
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		mappings: make([]*Mapping, 0, 8),
		states:   make(map[uint32]State),
	}
}

// Map registers a readable/writable region of the physical address space.
// Word handlers may be nil, in which case 16-bit access to the region is
// synthesised from two byte accesses. The mapping is enabled on return.
func (mem *Memory) Map(base uint32, size uint32, r8 Read8, r16 Read16, w8 Write8, w16 Write16, backing []byte, flags Flags) *Mapping {
	mp := &Mapping{
		mem:     mem,
		base:    base,
		size:    size,
		enabled: true,
		read8:   r8,
		read16:  r16,
		write8:  w8,
		write16: w16,
		backing: backing,
		flags:   flags,
	}
	mem.mappings = append(mem.mappings, mp)
	return mp
}

// Delete unregisters a mapping. Deleting a mapping that is not registered is
// a no-op.
func (mem *Memory) Delete(mp *Mapping) {
	for i := range mem.mappings {
		if mem.mappings[i] == mp {
			mem.mappings = append(mem.mappings[:i], mem.mappings[i+1:]...)
			break // for loop
		}
	}
	if mem.remap == mp {
		mem.remap = nil
	}
}

// ClaimRemap registers the shared upper-memory remap window. There is only
// one such window per Memory instance; a previous claim is silently replaced
// (the takeover is logged). As with Map(), the mapping is enabled on return.
func (mem *Memory) ClaimRemap(base uint32, size uint32, r8 Read8, r16 Read16, w8 Write8, w16 Write16, backing []byte, flags Flags) *Mapping {
	if mem.remap != nil {
		logger.Logf(logger.Allow, "memory", "remap window reclaimed (was %06x)", mem.remap.base)
		mem.Delete(mem.remap)
	}
	mem.remap = mem.Map(base, size, r8, r16, w8, w16, backing, flags)
	return mem.remap
}

// RemapWindow returns the current registration of the shared upper-memory
// remap window, or nil if no device has claimed it.
func (mem *Memory) RemapWindow() *Mapping {
	return mem.remap
}

// SetState informs the memory state decoder that an address range is handled
// in a particular way. The range is widened to the decoder granularity.
func (mem *Memory) SetState(base uint32, size uint32, state State) {
	for p := base / statePageSize; p <= (base+size-1)/statePageSize; p++ {
		mem.states[p] = state
	}
}

// GetState returns the decoder state for the specified address.
func (mem *Memory) GetState(addr uint32) State {
	return mem.states[addr/statePageSize]
}

// Mappings returns every registered mapping, in registration order.
func (mem *Memory) Mappings() []*Mapping {
	return mem.mappings
}

// find the enabled mapping that handles addr. nil if there is none.
func (mem *Memory) find(addr uint32) *Mapping {
	for _, mp := range mem.mappings {
		if mp.enabled && mp.contains(addr) {
			return mp
		}
	}
	return nil
}

// Read8 dispatches a byte read to the enabled mapping containing addr.
// Unmapped addresses read 0xff.
func (mem *Memory) Read8(addr uint32) uint8 {
	mp := mem.find(addr)
	if mp == nil || mp.read8 == nil {
		return unmappedData
	}
	return mp.read8(addr)
}

// Read16 dispatches a word read. The mapping's word handler is used only when
// the whole word falls inside the mapping; otherwise, and for mappings
// without word handlers, the word is synthesised from two byte reads.
func (mem *Memory) Read16(addr uint32) uint16 {
	mp := mem.find(addr)
	if mp != nil && mp.read16 != nil && mp.contains(addr+1) {
		return mp.read16(addr)
	}
	return uint16(mem.Read8(addr)) | uint16(mem.Read8(addr+1))<<8
}

// Write8 dispatches a byte write to the enabled mapping containing addr.
// Unmapped writes are dropped.
func (mem *Memory) Write8(addr uint32, data uint8) {
	mp := mem.find(addr)
	if mp == nil || mp.write8 == nil {
		return
	}
	mp.write8(addr, data)
}

// Write16 dispatches a word write, with the same synthesis rule as Read16.
func (mem *Memory) Write16(addr uint32, data uint16) {
	mp := mem.find(addr)
	if mp != nil && mp.write16 != nil && mp.contains(addr+1) {
		mp.write16(addr, data)
		return
	}
	mem.Write8(addr, uint8(data))
	mem.Write8(addr+1, uint8(data>>8))
}
