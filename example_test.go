// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp_test

import (
	"fmt"

	"code.hybscloud.com/fp"
)

func ExampleCurry() {
	sum := fp.MustLift(func(x, y, z int) int { return x + y + z })
	plusFive, _ := fp.ApplyEach(fp.Curry(sum, 3), []any{1}, []any{4})

	a, _ := fp.Apply(plusFive, 9)
	b, _ := fp.Apply(plusFive, 10)
	fmt.Println(a, b)
	// Output: 14 15
}

func ExampleCompose() {
	inc := fp.MustLift(func(x int) int { return x + 1 })
	add2 := fp.MustLift(func(x int) int { return x + 2 })
	triple := fp.MustLift(func(x int) int { return x * 3 })

	r1, _ := fp.Compose(inc, add2, triple)(4)
	r2, _ := fp.ComposeRight(inc, add2, triple)(4)
	fmt.Println(r1, r2)
	// Output: 15 21
}

func ExampleCurriedFilter() {
	isEven := func(x int) bool { return x%2 == 0 }
	evens, _ := fp.CurriedFilter.Call(isEven)

	r, _ := fp.Apply(evens, []int{1, 2, 4, 5, 6, 7, 7, 10, 12, 101})
	fmt.Println(r)
	// Output: [2 4 6 10 12]
}

func ExampleDataLast() {
	mapLast := fp.DataLast(fp.MapMethod)
	r, _ := mapLast(func(s string) string { return s + "!" }, []string{"a", "b"})
	fmt.Println(r)
	// Output: [a! b!]
}
