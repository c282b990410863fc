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

package ports_test

import (
	"testing"

	"github.com/anabate123/86Box/hardware/ports"
	"github.com/anabate123/86Box/test"
)

func TestUnattachedPort(t *testing.T) {
	p := ports.NewPorts()
	test.Equate(t, p.Inb(0x258), 0xff)

	// writes to unattached ports are swallowed
	p.Outb(0x258, 0x80)
	test.Equate(t, p.Inb(0x258), 0xff)
}

func TestDispatch(t *testing.T) {
	p := ports.NewPorts()

	var reg [2]uint8
	h := p.Attach(0x258, 2, func(port uint16) uint8 {
		return reg[port-0x258]
	}, func(port uint16, data uint8) {
		reg[port-0x258] = data
	})

	p.Outb(0x258, 0x85)
	p.Outb(0x259, 0x42)
	test.Equate(t, p.Inb(0x258), 0x85)
	test.Equate(t, p.Inb(0x259), 0x42)

	// port just outside the attached range
	test.Equate(t, p.Inb(0x25a), 0xff)

	p.Remove(h)
	test.Equate(t, p.Inb(0x258), 0xff)
	test.Equate(t, len(p.Handlers()), 0)
}

func TestHighPorts(t *testing.T) {
	p := ports.NewPorts()

	// handlers spaced at 16KB intervals, the way the EMS register pairs are
	// attached, reach into the top quarter of the port space
	var lastPort uint16
	for i := 0; i < 4; i++ {
		base := uint16(0x258 + i*0x4000)
		p.Attach(base, 2, nil, func(port uint16, data uint8) {
			lastPort = port
		})
	}

	p.Outb(0xc258, 0x01)
	test.Equate(t, lastPort, 0xc258)
}
