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

// Package logger is the central log for the entire application. There is only
// one log and it can be accessed through the package level functions.
//
// Log entries are made with the Log() and Logf() functions. Entries are
// grouped by a tag string, which by convention is the name of the emulated
// device or subsystem making the entry. Identical consecutive entries are
// folded into a repeat count rather than being stored twice.
//
// The contents of the log can be written to an io.Writer with the Write() and
// Tail() functions; or echoed to an io.Writer as entries arrive with
// SetEcho().
package logger
