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

package memory_test

import (
	"testing"

	"github.com/anabate123/86Box/hardware/memory"
	"github.com/anabate123/86Box/test"
)

// mapRAM registers a simple RAM mapping over the supplied buffer, with or
// without word handlers.
func mapRAM(mem *memory.Memory, base uint32, buf []byte, wide bool) *memory.Mapping {
	r8 := func(addr uint32) uint8 {
		return buf[addr-base]
	}
	w8 := func(addr uint32, data uint8) {
		buf[addr-base] = data
	}

	var r16 memory.Read16
	var w16 memory.Write16
	if wide {
		r16 = func(addr uint32) uint16 {
			o := addr - base
			return uint16(buf[o]) | uint16(buf[o+1])<<8
		}
		w16 = func(addr uint32, data uint16) {
			o := addr - base
			buf[o] = uint8(data)
			buf[o+1] = uint8(data >> 8)
		}
	}

	return mem.Map(base, uint32(len(buf)), r8, r16, w8, w16, buf, memory.FlagExternal)
}

func TestUnmappedAccess(t *testing.T) {
	mem := memory.NewMemory()

	test.Equate(t, mem.Read8(0x1000), 0xff)
	test.Equate(t, mem.Read16(0x1000), 0xffff)

	// writes to unmapped addresses are dropped without complaint
	mem.Write8(0x1000, 0xa5)
	test.Equate(t, mem.Read8(0x1000), 0xff)
}

func TestDispatch(t *testing.T) {
	mem := memory.NewMemory()
	buf := make([]byte, 0x4000)
	mp := mapRAM(mem, 0x40000, buf, true)

	mem.Write8(0x40000, 0x12)
	test.Equate(t, mem.Read8(0x40000), 0x12)

	mem.Write16(0x41000, 0xbeef)
	test.Equate(t, mem.Read16(0x41000), 0xbeef)
	test.Equate(t, mem.Read8(0x41000), 0xef)
	test.Equate(t, mem.Read8(0x41001), 0xbe)

	// disabled mappings do not receive accesses
	mp.Disable()
	test.Equate(t, mem.Read8(0x40000), 0xff)
	mp.Enable()
	test.Equate(t, mem.Read8(0x40000), 0x12)
}

func TestWordSynthesis(t *testing.T) {
	mem := memory.NewMemory()
	buf := make([]byte, 0x4000)

	// byte handlers only. word access must still work
	mapRAM(mem, 0x40000, buf, false)

	mem.Write16(0x40000, 0x1234)
	test.Equate(t, mem.Read16(0x40000), 0x1234)
	test.Equate(t, mem.Read8(0x40000), 0x34)
	test.Equate(t, mem.Read8(0x40001), 0x12)
}

func TestWordAtMappingBoundary(t *testing.T) {
	mem := memory.NewMemory()
	lo := make([]byte, 0x4000)
	hi := make([]byte, 0x4000)
	mapRAM(mem, 0x40000, lo, true)
	mapRAM(mem, 0x44000, hi, true)

	// a word access straddling two mappings is synthesised from byte
	// accesses, one to each mapping
	mem.Write16(0x43fff, 0xcafe)
	test.Equate(t, lo[0x3fff], 0xfe)
	test.Equate(t, hi[0], 0xca)
	test.Equate(t, mem.Read16(0x43fff), 0xcafe)
}

func TestRebind(t *testing.T) {
	mem := memory.NewMemory()

	// handlers that resolve storage through the mapping's current backing,
	// the way a bank-switched window does
	var mp *memory.Mapping
	r8 := func(addr uint32) uint8 {
		return mp.Backing()[addr-mp.Base()]
	}
	w8 := func(addr uint32, data uint8) {
		mp.Backing()[addr-mp.Base()] = data
	}

	bankA := make([]byte, 0x4000)
	bankB := make([]byte, 0x4000)
	bankA[0] = 0xaa
	bankB[0] = 0xbb

	mp = mem.Map(0xe0000, 0x4000, r8, nil, w8, nil, bankA, memory.FlagExternal)
	test.Equate(t, mem.Read8(0xe0000), 0xaa)

	mp.Rebind(bankB)
	test.Equate(t, mem.Read8(0xe0000), 0xbb)
}

func TestRemapClaim(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectedSuccess(t, mem.RemapWindow() == nil)

	buf := make([]byte, 0x60000)
	r8 := func(addr uint32) uint8 { return buf[addr-0x100000] }
	w8 := func(addr uint32, data uint8) { buf[addr-0x100000] = data }

	mp := mem.ClaimRemap(0x100000, 0x60000, r8, nil, w8, nil, buf, memory.FlagExternal)
	test.ExpectedSuccess(t, mem.RemapWindow() == mp)

	// deleting the claim releases the slot
	mem.Delete(mp)
	test.ExpectedSuccess(t, mem.RemapWindow() == nil)
}

func TestStateDecoder(t *testing.T) {
	mem := memory.NewMemory()

	test.Equate(t, int(mem.GetState(0x40000)), int(memory.StateInternal))
	mem.SetState(0x40000, 0x60000, memory.StateExternal)
	test.Equate(t, int(mem.GetState(0x40000)), int(memory.StateExternal))
	test.Equate(t, int(mem.GetState(0x9ffff)), int(memory.StateExternal))
	test.Equate(t, int(mem.GetState(0xa0000)), int(memory.StateInternal))
}
