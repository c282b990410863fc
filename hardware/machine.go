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

package hardware

import (
	"github.com/anabate123/86Box/curated"
	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/hardware/isamem"
	"github.com/anabate123/86Box/hardware/memory"
	"github.com/anabate123/86Box/hardware/ports"
)

// sentinal errors returned by the Machine type.
const (
	AttachError = "machine: %v"
)

// BoardSlot describes one expansion board to be attached during Reset().
type BoardSlot struct {
	// the internal name of the board variant. an empty string or "none"
	// leaves the slot empty
	Board string

	Options device.Options
}

// Machine is the emulated system: the two buses and whatever boards are
// plugged into them.
type Machine struct {
	Mem   *memory.Memory
	Ports *ports.Ports

	// AT indicates an AT-class system bus, with 24-bit addressing and
	// 16-bit transfers
	AT bool

	boards []*isamem.Board
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(at bool) *Machine {
	return &Machine{
		Mem:   memory.NewMemory(),
		Ports: ports.NewPorts(),
		AT:    at,
	}
}

// AttachBoard plugs a memory expansion board into the machine.
func (mc *Machine) AttachBoard(internalName string, opts device.Options) (*isamem.Board, error) {
	spec := isamem.Lookup(internalName)
	if spec == nil {
		return nil, curated.Errorf(isamem.UnknownBoard, internalName)
	}

	brd, err := isamem.Attach(mc.Mem, mc.Ports, mc.AT, spec, opts)
	if err != nil {
		return nil, curated.Errorf(AttachError, err)
	}

	mc.boards = append(mc.boards, brd)
	return brd, nil
}

// DetachBoards removes every attached board from the machine, releasing
// their bus registrations.
func (mc *Machine) DetachBoards() {
	for _, brd := range mc.boards {
		brd.Detach()
	}
	mc.boards = nil
}

// Boards returns the currently attached boards, in attachment order.
func (mc *Machine) Boards() []*isamem.Board {
	return mc.boards
}

// Reset returns the machine to a cold-boot state: every board is detached
// and the boards in the given slots attached in their place.
func (mc *Machine) Reset(slots []BoardSlot) error {
	mc.DetachBoards()
	for _, s := range slots {
		if s.Board == "" || s.Board == "none" {
			continue
		}
		if _, err := mc.AttachBoard(s.Board, s.Options); err != nil {
			return err
		}
	}
	return nil
}
