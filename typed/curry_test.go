// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/fp/typed"
)

func sumThree(x, y, z int) int { return x + y + z }

func TestCurry3(t *testing.T) {
	curried := typed.Curry3(sumThree)
	numsPlusOne := curried(1)
	plusFive := numsPlusOne(4)

	assert.Equal(t, 14, plusFive(9))
	assert.Equal(t, 14, curried(1)(4)(9))
	assert.Equal(t, 15, plusFive(10))
	assert.Equal(t, 10, numsPlusOne(3)(6))
}

func TestCurry2AndUncurry(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 3, typed.Curry2(sub)(5)(2))
	assert.Equal(t, 3, typed.Uncurry2(typed.Curry2(sub))(5, 2))
	assert.Equal(t, 14, typed.Uncurry3(typed.Curry3(sumThree))(1, 4, 9))
}

func TestPartial(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	assert.Equal(t, "ab", typed.Partial1(concat, "a")("b"))
	assert.Equal(t, 14, typed.Partial2(sumThree, 1, 4)(9))
}

func TestFlipAndDataLast(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	assert.Equal(t, "ba", typed.Flip(concat)("a", "b"))

	repeat := func(s string, n int) string {
		out := ""
		for range n {
			out += s
		}
		return out
	}
	assert.Equal(t, "xxx", typed.DataLast(repeat)(3, "x"))
}
