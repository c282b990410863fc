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

// Package terminal defines the operations required by the monitor's command
// line interface. Two implementations exist in the sub-packages: plainterm,
// which works over any reader/writer pair, and colorterm, which drives a real
// ANSI terminal in raw mode.
package terminal

// Sentinal errors. Returned by TermRead() if caught whilst waiting for
// input.
const (
	UserInterrupt = "user interrupt"
)

// Style is used to hint to the terminal implementation how a line of output
// should be presented.
type Style int

// List of valid Style values.
const (
	// the echo of a command the monitor has just run
	StyleEcho Style = iota

	// information the user asked for
	StyleFeedback

	// help text
	StyleHelp

	// lines retrieved from the central logger
	StyleLog

	// something went wrong
	StyleError
)

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	// Initialise the terminal. not all implementations will need to do
	// anything
	Initialise() error

	// restore the terminal to its original state, if possible. for example,
	// returning the terminal to canonical mode
	CleanUp()

	// TermRead returns one line of user input, without the line terminator.
	// an io.EOF error means no more input will ever arrive
	TermRead(prompt string) (string, error)

	// TermPrintLine prints a line of output, styled as indicated
	TermPrintLine(style Style, s string)

	// Silence all output except error messages
	Silence(silenced bool)
}
