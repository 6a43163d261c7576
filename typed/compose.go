// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typed

// Compose2 returns f ∘ g: Compose2(f, g)(a) == f(g(a)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Compose3 returns f ∘ g ∘ h.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D { return f(g(h(a))) }
}

// Pipe2 chains left to right: Pipe2(f, g)(a) == g(f(a)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Pipe3 chains left to right: Pipe3(f, g, h)(a) == h(g(f(a))).
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

// identity is the empty chain.
// A named generic function avoids a closure allocation per instantiation.
func identity[T any](v T) T { return v }

// Compose chains same-typed functions right to left.
// Compose() is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		return identity[T]
	}
	chain := make([]func(T) T, len(fns))
	copy(chain, fns)
	return func(v T) T {
		for i := len(chain) - 1; i >= 0; i-- {
			v = chain[i](v)
		}
		return v
	}
}

// Pipe chains same-typed functions left to right.
// Pipe() is the identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		return identity[T]
	}
	chain := make([]func(T) T, len(fns))
	copy(chain, fns)
	return func(v T) T {
		for _, f := range chain {
			v = f(v)
		}
		return v
	}
}
