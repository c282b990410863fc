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

package curated_test

import (
	"testing"

	"github.com/anabate123/86Box/curated"
	"github.com/anabate123/86Box/test"
)

const testError = "test error: %s"
const baseError = "base error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf("foo")
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "foo"))
	test.ExpectedFailure(t, curated.Is(e, "bar"))

	f := curated.Errorf(testError, e)
	test.ExpectedSuccess(t, curated.Is(f, testError))
	test.ExpectedFailure(t, curated.Is(f, "foo"))
}

func TestHas(t *testing.T) {
	b := curated.Errorf(baseError, "wibble")
	e := curated.Errorf(testError, b)

	test.ExpectedSuccess(t, curated.Has(e, testError))
	test.ExpectedSuccess(t, curated.Has(e, baseError))
	test.ExpectedFailure(t, curated.Has(b, testError))
}

func TestDuplicateNormalisation(t *testing.T) {
	// wrapping an error in itself should not result in a duplicated message
	e := curated.Errorf("error: %s", "part")
	f := curated.Errorf("error: %s", e)
	test.Equate(t, f.Error(), "error: part")
}

func TestPlainErrors(t *testing.T) {
	// curated functions should cope with plain go errors
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testError))
	test.ExpectedFailure(t, curated.Has(nil, testError))
}
