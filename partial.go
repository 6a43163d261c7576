// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

// Partial binds a prefix of arguments to fn.
// The returned Func calls fn(bound..., rest...) when invoked with rest.
// No arity check is made: supplying a sensible number of arguments is up
// to the caller. fn is not called until the returned Func is.
//
// Example:
//
//	addTen := Partial(add, 10)
//	addTen(5) // add(10, 5)
func Partial(fn Func, bound ...any) Func {
	if len(bound) == 0 {
		return fn
	}
	prefix := make([]any, len(bound))
	copy(prefix, bound)
	return func(rest ...any) (any, error) {
		return fn(concat(prefix, rest)...)
	}
}

// concat returns a new slice holding a followed by b.
// Neither input is retained or modified.
func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
