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

// Package monitor is the interactive front-end to the emulated machine. It
// reads commands from a Terminal implementation and pokes around the memory
// and port buses on the user's behalf. It stands in for the software that
// would normally drive the hardware: with PEEK, POKE, IN and OUT the user
// can do by hand everything an EMS driver does.
package monitor
