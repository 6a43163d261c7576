// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typed_test

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/fp/typed"
)

func isEven(x int) bool { return x%2 == 0 }

func concatUniq(acc []int, c int) []int {
	if slices.Contains(acc, c) {
		return acc
	}
	return append(slices.Clone(acc), c)
}

func TestCurriedMap(t *testing.T) {
	addTen := typed.CurriedMap(func(n int) int { return n + 10 })
	assert.Equal(t, []int{10, 11, 12, 13}, addTen([]int{0, 1, 2, 3}))
	assert.Empty(t, addTen(nil))
}

func TestCurriedFilter(t *testing.T) {
	evens := typed.CurriedFilter(isEven)
	assert.Equal(t, []int{2, 4, 6, 10, 12}, evens([]int{1, 2, 4, 5, 6, 7, 7, 10, 12, 101}))
}

func TestCurriedReduce(t *testing.T) {
	dedupe := typed.CurriedReduce[int]([]int{})(concatUniq)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, dedupe([]int{1, 1, 2, 3, 4, 5, 6, 1, 7, 5, 8}))
}

func TestReduceIsLeftFold(t *testing.T) {
	got := typed.Reduce("0", func(acc, c string) string { return "(" + acc + c + ")" }, []string{"a", "b", "c"})
	assert.Equal(t, "(((0a)b)c)", got)
}

func TestTail(t *testing.T) {
	in := []int{1, 2, 3}
	out := typed.Tail(in)
	assert.Equal(t, []int{2, 3}, out)
	out[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Empty(t, typed.Tail([]int{}))
}

func TestFind(t *testing.T) {
	v, ok := typed.Find(isEven, []int{1, 3, 4, 6}).Get()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	assert.True(t, typed.Find(isEven, []int{1, 3}).IsAbsent())
}

func TestTryThen(t *testing.T) {
	parse := typed.Try(strconv.Atoi)
	half := func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errors.New("odd")
		}
		return n / 2, nil
	}
	parseHalf := typed.Then(parse, typed.Try(half))

	v, err := parseHalf("42").Get()
	require.NoError(t, err)
	assert.Equal(t, 21, v)

	_, err = parseHalf("7").Get()
	require.EqualError(t, err, "odd")

	_, err = parseHalf("x").Get()
	require.Error(t, err)
}

func TestPropertyMapFilterReduce(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	properties := gopter.NewProperties(params)

	properties.Property("Map preserves length and order", prop.ForAll(
		func(seq []int) bool {
			out := typed.Map(strconv.Itoa, seq)
			if len(out) != len(seq) {
				return false
			}
			for i, v := range seq {
				if out[i] != strconv.Itoa(v) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("Filter keeps a subsequence of matches", prop.ForAll(
		func(seq []int) bool {
			out := typed.Filter(isEven, seq)
			j := 0
			for _, v := range seq {
				if isEven(v) {
					if j >= len(out) || out[j] != v {
						return false
					}
					j++
				}
			}
			return j == len(out)
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("Reduce with Tail equals Reduce from the head", prop.ForAll(
		func(head int, rest []int) bool {
			seq := append([]int{head}, rest...)
			sub := func(acc, c int) int { return acc - c }
			return typed.Reduce(0, sub, seq) == typed.Reduce(-head, sub, typed.Tail(seq))
		},
		gen.IntRange(-1000, 1000), gen.SliceOf(gen.IntRange(-1000, 1000)),
	))
	properties.TestingRun(t)
}
