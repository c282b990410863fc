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

// Package curated is the error mechanism used throughout the project. Errors
// are created from a pattern string and a list of values. The pattern is kept
// alongside the values which means errors can be tested for their origin with
// the Is() and Has() functions, without comparing formatted strings.
//
// Error messages are deduplicated as they are formatted. When a curated error
// wraps another curated error with the same leading message part, the
// duplicate part is dropped. This keeps messages readable as errors bubble up
// through several layers:
//
//	isamem: ev159: no RAM configured
//
// rather than:
//
//	isamem: isamem: ev159: no RAM configured
package curated
