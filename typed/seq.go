// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typed

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Map applies f to every element of seq, in order.
func Map[T, U any](f func(T) U, seq []T) []U {
	return lo.Map(seq, func(item T, _ int) U { return f(item) })
}

// Filter keeps the elements of seq for which pred holds, in order.
func Filter[T any](pred func(T) bool, seq []T) []T {
	return lo.Filter(seq, func(item T, _ int) bool { return pred(item) })
}

// Reduce folds seq from the left, starting from initial.
func Reduce[T, A any](initial A, f func(A, T) A, seq []T) A {
	return lo.Reduce(seq, func(acc A, item T, _ int) A { return f(acc, item) }, initial)
}

// Tail returns a copy of every element of seq but the first.
func Tail[T any](seq []T) []T {
	return append([]T(nil), lo.Drop(seq, 1)...)
}

// Find returns the first element of seq for which pred holds.
func Find[T any](pred func(T) bool, seq []T) mo.Option[T] {
	v, ok := lo.Find(seq, pred)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// CurriedMap is Map taking its arguments one at a time.
func CurriedMap[T, U any](f func(T) U) func([]T) []U {
	return Curry2(Map[T, U])(f)
}

// CurriedFilter is Filter taking its arguments one at a time.
func CurriedFilter[T any](pred func(T) bool) func([]T) []T {
	return Curry2(Filter[T])(pred)
}

// CurriedReduce is Reduce taking its arguments one at a time:
// initial, then the combining function, then the sequence.
func CurriedReduce[T, A any](initial A) func(func(A, T) A) func([]T) A {
	return Curry3(Reduce[T, A])(initial)
}
