// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

// Composition chains.
// A chain is stored as a flat slice and evaluated by a loop rather than as
// nested closures, so long chains do not grow the stack.

// chain is an immutable sequence of Funcs evaluated front to back.
// The first element receives all initial arguments; every later element
// receives exactly the result of its predecessor.
type chain []Func

func (ch chain) call(args ...any) (any, error) {
	v, err := ch[0](args...)
	for _, f := range ch[1:] {
		if err != nil {
			return v, err
		}
		v, err = f(v)
	}
	return v, err
}

// ComposeRight chains functions left to right:
//
//	ComposeRight(f, g, h)(x...) == h(g(f(x...)))
//
// fn receives all the arguments; each function in rest receives the single
// result of the one before it. With no rest, ComposeRight returns fn.
// The first error stops the chain and is returned as is.
// ComposeRight panics if any function is nil.
func ComposeRight(fn Func, rest ...Func) Func {
	if fn == nil {
		panic("fp: nil function in composition chain")
	}
	if len(rest) == 0 {
		return fn
	}
	ch := make(chain, 0, len(rest)+1)
	ch = append(ch, fn)
	for _, f := range rest {
		if f == nil {
			panic("fp: nil function in composition chain")
		}
		ch = append(ch, f)
	}
	return ch.call
}

// Compose chains functions right to left, in the order of mathematical
// composition:
//
//	Compose(f, g, h)(x...) == f(g(h(x...)))
//
// The last function receives all the arguments. Compose(fns...) is
// ComposeRight over fns reversed; fns itself is left untouched.
//
// Compose() with no functions returns Identity.
func Compose(fns ...Func) Func {
	if len(fns) == 0 {
		return Identity
	}
	rev := make([]Func, len(fns))
	for i, f := range fns {
		rev[len(fns)-1-i] = f
	}
	return ComposeRight(rev[0], rev[1:]...)
}
