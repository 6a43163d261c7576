// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typed

import "github.com/samber/mo"

// Try turns a fallible function into one returning a mo.Result.
func Try[A, B any](f func(A) (B, error)) func(A) mo.Result[B] {
	return func(a A) mo.Result[B] {
		v, err := f(a)
		return mo.TupleToResult(v, err)
	}
}

// Then chains a Result-returning function after a fallible one.
// The second function is not called once the first has failed.
func Then[A, B, C any](f func(A) mo.Result[B], g func(B) mo.Result[C]) func(A) mo.Result[C] {
	return func(a A) mo.Result[C] {
		r := f(a)
		v, err := r.Get()
		if err != nil {
			return mo.Err[C](err)
		}
		return g(v)
	}
}
