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

// Handler function types for a mapping. Addresses passed to a handler are
// physical addresses, guaranteed to fall inside the registered mapping.
type (
	Read8   func(addr uint32) uint8
	Read16  func(addr uint32) uint16
	Write8  func(addr uint32, data uint8)
	Write16 func(addr uint32, data uint16)
)

// Flags qualify a mapping at registration time.
type Flags int

// List of valid Flags values.
const (
	FlagInternal Flags = iota

	// the mapping is backed by RAM on an expansion device rather than by
	// planar memory
	FlagExternal
)

// Mapping is a registered region of the physical address space. Instances are
// created with the Map() and ClaimRemap() functions of the Memory type.
type Mapping struct {
	mem *Memory

	base uint32
	size uint32

	enabled bool

	read8   Read8
	read16  Read16
	write8  Write8
	write16 Write16

	// current backing storage for the mapping. informational for mappings
	// whose handlers resolve their own storage (eg. bank-switched windows)
	// but kept up to date through Rebind() in all cases
	backing []byte

	flags Flags
}

// Base returns the first physical address covered by the mapping.
func (mp *Mapping) Base() uint32 {
	return mp.base
}

// Size returns the extent of the mapping in bytes.
func (mp *Mapping) Size() uint32 {
	return mp.size
}

// IsEnabled returns whether guest accesses currently route to this mapping.
func (mp *Mapping) IsEnabled() bool {
	return mp.enabled
}

// Enable routing of guest accesses to this mapping.
func (mp *Mapping) Enable() {
	mp.enabled = true
}

// Disable routing of guest accesses to this mapping.
func (mp *Mapping) Disable() {
	mp.enabled = false
}

// Rebind retargets the mapping's backing storage without re-registering the
// mapping.
func (mp *Mapping) Rebind(backing []byte) {
	mp.backing = backing
}

// Backing returns the current backing storage of the mapping.
func (mp *Mapping) Backing() []byte {
	return mp.backing
}

// contains returns true if addr falls inside the mapping.
func (mp *Mapping) contains(addr uint32) bool {
	return addr >= mp.base && addr < mp.base+mp.size
}
