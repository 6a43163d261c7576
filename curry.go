// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

import "fmt"

// Curried is an immutable partial-application node: a target function,
// its arity, and the arguments accumulated so far.
//
// Applying a node never modifies it. Every application builds a fresh
// argument slice, so one node may be completed any number of times, from
// any number of goroutines, and each completion sees only its own
// arguments:
//
//	add3 := Curry(sum3, 3)
//	one, _ := add3.Call(1)                     // pending: [1]
//	a, _ := Apply(one, 2, 3)                   // sum3(1, 2, 3)
//	b, _ := ApplyEach(one, []any{4}, []any{5}) // sum3(1, 4, 5)
type Curried struct {
	fn    Func
	arity int
	args  []any
	unary bool
}

// Curry returns a node that accumulates arguments across calls until at
// least arity of them are present, then calls fn with all of them in order.
//
// arity must be given explicitly; it is never derived from fn. With arity 0
// the first call invokes fn directly with whatever it is given, so a
// variadic function can only be curried meaningfully with an explicit arity.
// If a call brings the total past arity, the surplus arguments are passed
// to fn as well.
//
// accumulated pre-seeds the node; it is copied.
// Curry panics if fn is nil or arity is negative.
func Curry(fn Func, arity int, accumulated ...any) *Curried {
	if fn == nil {
		panic("fp: curry of nil function")
	}
	if arity < 0 {
		panic("fp: negative arity")
	}
	args := make([]any, len(accumulated))
	copy(args, accumulated)
	return &Curried{fn: fn, arity: arity, args: args}
}

// CurryUnary is like Curry, but each call must supply exactly one argument.
// A call with zero or several arguments returns ErrUnaryArgs and leaves
// the node usable. The rule holds on every step, not only the first:
// surplus arguments are never dropped, and a node never falls back to
// accepting argument groups.
//
// With arity 0 there is no step to constrain, so the node behaves like
// Curry(fn, 0) and the first call invokes fn with whatever it is given.
func CurryUnary(fn Func, arity int) *Curried {
	c := Curry(fn, arity)
	c.unary = true
	return c
}

// Step applies next to the node.
// Returns (result, nil, err) when the node is saturated and fn was called,
// or (nil, pending, nil) when more arguments are needed.
//
// Example:
//
//	v, pending, err := Curry(sum3, 3).Step(1)
//	for pending != nil && err == nil {
//	    v, pending, err = pending.Step(nextArg())
//	}
func (c *Curried) Step(next ...any) (any, *Curried, error) {
	if c.unary && c.arity > 0 && len(next) != 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrUnaryArgs, len(next))
	}
	combined := concat(c.args, next)
	if len(combined) < c.arity {
		return nil, &Curried{fn: c.fn, arity: c.arity, args: combined, unary: c.unary}, nil
	}
	v, err := c.fn(combined...)
	return v, nil, err
}

// Call applies next to the node and returns either the pending *Curried
// or the result of the target function.
// Call has the signature of Func, so c.Call can be used wherever a Func is.
func (c *Curried) Call(next ...any) (any, error) {
	v, pending, err := c.Step(next...)
	if pending != nil {
		return pending, nil
	}
	return v, err
}

// Func returns the node as a Func.
func (c *Curried) Func() Func { return c.Call }

// Arity returns the number of arguments the target needs.
func (c *Curried) Arity() int { return c.arity }

// Len returns the number of arguments accumulated so far.
func (c *Curried) Len() int { return len(c.args) }

// Remaining returns how many more arguments saturate the node.
func (c *Curried) Remaining() int { return max(c.arity-len(c.args), 0) }

// Args returns a copy of the accumulated arguments.
func (c *Curried) Args() []any {
	out := make([]any, len(c.args))
	copy(out, c.args)
	return out
}

func (c *Curried) String() string {
	return fmt.Sprintf("fp.Curried(%d/%d)", len(c.args), c.arity)
}
