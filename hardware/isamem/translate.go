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

// region translates bus addresses for a fixed window of the board's RAM
// arena. the translation is a constant displacement: arena index is
// offset + (addr - base). handlers are only ever called with addresses
// inside the registered mapping so the subtraction cannot go negative.
type region struct {
	ram    []byte
	base   uint32
	offset uint32
}

func (r *region) read8(addr uint32) uint8 {
	return r.ram[r.offset+(addr-r.base)]
}

// words are little-endian. the bus only calls a word handler when both bytes
// fall inside the mapping.
func (r *region) read16(addr uint32) uint16 {
	i := r.offset + (addr - r.base)
	return uint16(r.ram[i]) | uint16(r.ram[i+1])<<8
}

func (r *region) write8(addr uint32, data uint8) {
	r.ram[r.offset+(addr-r.base)] = data
}

func (r *region) write16(addr uint32, data uint16) {
	i := r.offset + (addr - r.base)
	r.ram[i] = uint8(data)
	r.ram[i+1] = uint8(data >> 8)
}
