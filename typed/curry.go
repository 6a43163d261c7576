// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package typed provides statically typed counterparts of the fp
// combinators. Arity is fixed by the function type, so currying and
// composition are checked at compile time and need no reflection.
package typed

// Partial1 binds the first argument of a binary function.
func Partial1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Partial2 binds the first two arguments of a ternary function.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return f(a, b, c) }
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}

// DataLast moves the receiver of a receiver-first binary function to the
// last position: DataLast(f)(a, s) == f(s, a).
func DataLast[S, A, R any](f func(S, A) R) func(A, S) R {
	return Flip(f)
}

// Curry2 converts a binary function into a chain of unary ones.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// Curry3 converts a ternary function into a chain of unary ones.
//
// Example:
//
//	sum := Curry3(func(x, y, z int) int { return x + y + z })
//	plusFive := sum(1)(4)
//	plusFive(9) // 14
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return f(a, b, c) }
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R { return f(a)(b) }
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R { return f(a)(b)(c) }
}
