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

// Package memory implements the host side of the system's physical memory
// bus. Devices register mappings over regions of the byte-addressed physical
// space. Each mapping carries byte handlers and, optionally, word handlers;
// when a device registers no word handlers, 16-bit access is synthesised from
// two byte accesses.
//
// Mappings can be enabled, disabled and rebound to different backing storage
// without re-registering. Rebinding is how bank-switched devices move a
// window over their local RAM.
//
// The package also maintains the memory state decoder, which records which
// regions of the address space are backed by external RAM rather than by
// host-default memory, and the single shared upper-memory remap window that
// any memory expansion device may claim (the most recent claimant wins, there
// is no arbitration).
package memory
