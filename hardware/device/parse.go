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

package device

import (
	"strconv"
	"strings"

	"github.com/anabate123/86Box/curated"
)

// ParseNumber accepts the hex conventions of the DOS world: a trailing H, a
// leading 0x, or bare hex digits. 0x40000, 40000 and 40000H all mean the
// same.
func ParseNumber(s string) (uint32, error) {
	t := strings.ToLower(s)
	t = strings.TrimSuffix(t, "h")
	t = strings.TrimPrefix(t, "0x")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, curated.Errorf("not a number (%s)", s)
	}
	return uint32(v), nil
}
