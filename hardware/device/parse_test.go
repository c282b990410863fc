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

package device_test

import (
	"testing"

	"github.com/anabate123/86Box/hardware/device"
	"github.com/anabate123/86Box/test"
)

func TestParseNumber(t *testing.T) {
	for _, s := range []string{"40000", "0x40000", "40000H", "40000h"} {
		v, err := device.ParseNumber(s)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, 0x40000)
	}

	_, err := device.ParseNumber("wibble")
	test.ExpectedFailure(t, err)

	_, err = device.ParseNumber("")
	test.ExpectedFailure(t, err)
}
