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

// Package isamem implements memory expansion boards for the ISA bus.
//
// Although modern systems use direct-connect local buses between the CPU and
// its memory, the early PCs used the system bus for that. Memory expansion
// cards could add memory through the ISA bus using a variety of techniques.
// The majority of these boards could provide additional conventional (low)
// memory, extended (high) memory on 286-class and later systems, and EMS
// bank-switched memory. This implementation uses the LIM 3.2 specification
// for EMS.
//
// With the EMS method, the system's standard memory is expanded by means of
// bank-switching. Up to four 16KB viewports in the upper memory area
// (640KB-1024KB) look into an array of RAM pages numbered 0 to N. I/O control
// registers select which page is visible through each viewport.
//
// A board is built from a variant Spec (see the catalogue in variants.go) and
// a set of device options, and carves its fitted RAM into up to four kinds of
// region, in this order: a conventional memory extension below 640KB, a 384KB
// chunk for the shared upper-memory remap window, extended memory above 1MB,
// and the EMS page pool.
package isamem
