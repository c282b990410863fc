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

// Package ports implements the host side of the system's 16-bit I/O port
// space. Devices attach handlers over a range of consecutive ports. Access to
// a port with no handler reads 0xff and swallows writes, which is what a real
// bus does when nothing responds to the address.
package ports

import (
	"github.com/anabate123/86Box/logger"
)

// Handler function types for an attached port range.
type (
	In8  func(port uint16) uint8
	Out8 func(port uint16, data uint8)
)

// value returned by a read of an unattached port.
const unattachedData = 0xff

// Handler records a device's claim over a range of consecutive ports.
// Instances are created with the Attach() function of the Ports type.
type Handler struct {
	base  uint16
	count int
	in    In8
	out   Out8
}

// Base returns the first port covered by the handler.
func (h *Handler) Base() uint16 {
	return h.base
}

// Count returns the number of consecutive ports covered by the handler.
func (h *Handler) Count() int {
	return h.count
}

// contains returns true if port falls inside the handler's range. port
// comparison is in the 16-bit space, so a range never wraps; devices that
// exploit wraparound attach one handler per alias.
func (h *Handler) contains(port uint16) bool {
	return port >= h.base && int(port) < int(h.base)+h.count
}

// Ports is the I/O port bus. Access dispatch is strictly single-threaded; the
// type carries no locking.
type Ports struct {
	handlers []*Handler
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{
		handlers: make([]*Handler, 0, 8),
	}
}

// Attach a handler pair to count consecutive ports starting at base.
func (p *Ports) Attach(base uint16, count int, in In8, out Out8) *Handler {
	h := &Handler{
		base:  base,
		count: count,
		in:    in,
		out:   out,
	}
	p.handlers = append(p.handlers, h)
	return h
}

// Remove a previously attached handler. Removing a handler that is not
// attached is a no-op.
func (p *Ports) Remove(h *Handler) {
	for i := range p.handlers {
		if p.handlers[i] == h {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return
		}
	}
}

// Handlers returns every attached handler, in attachment order.
func (p *Ports) Handlers() []*Handler {
	return p.handlers
}

// find the handler that covers port. nil if there is none.
func (p *Ports) find(port uint16) *Handler {
	for _, h := range p.handlers {
		if h.contains(port) {
			return h
		}
	}
	return nil
}

// Inb dispatches a byte read of an I/O port.
func (p *Ports) Inb(port uint16) uint8 {
	h := p.find(port)
	if h == nil || h.in == nil {
		logger.Logf(logger.Allow, "ports", "read of unattached port %04x", port)
		return unattachedData
	}
	return h.in(port)
}

// Outb dispatches a byte write to an I/O port.
func (p *Ports) Outb(port uint16, data uint8) {
	h := p.find(port)
	if h == nil || h.out == nil {
		logger.Logf(logger.Allow, "ports", "write of %02x to unattached port %04x", data, port)
		return
	}
	h.out(port, data)
}
