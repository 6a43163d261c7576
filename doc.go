// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fp provides point-free function combinators in Go.
//
// Functions are built from other functions: arguments are fixed ahead of
// time, reordered, or accumulated across calls, and outputs are chained to
// inputs, without hand-written wrapper closures.
//
// The package works on a single dynamic callable shape, [Func], so that any
// combinator can consume the output of any other. Statically typed
// counterparts for callers who know their types at compile time live in
// package code.hybscloud.com/fp/typed.
//
// # Callables
//
//   - [Func]: func(args ...any) (any, error), the uniform callable
//   - [Method]: receiver-first operation, recv then args
//   - [Lift], [MustLift]: adapt an ordinary Go function into a Func
//   - [As]: adapt a Func back into a typed Go function
//   - [Apply], [ApplyEach]: invoke any callable value, one or several times
//   - [Try]: invoke a Func and fold the outcome into a mo.Result
//
// # Argument Order
//
//   - [Reverse]: reverse the arguments, the first reversed one is the receiver
//   - [DataLast]: the last argument is the receiver, the rest keep their order
//   - [Partial]: bind a prefix of arguments
//
// # Currying
//
// [Curry] takes an explicit arity. It is never derived from the function,
// since variadic functions and functions with optional arguments have no
// reliable declared arity.
//
//   - [Curry]: accumulate arguments until arity is reached, then call
//   - [CurryUnary]: the same, one argument per call
//   - [Curried.Call]: apply arguments; returns a pending *Curried or the result
//   - [Curried.Step]: apply arguments; returns (result, nil, err) or (nil, pending, nil)
//
// A [Curried] node is immutable. Completing it twice with different
// arguments yields two independent results, and nodes are safe for
// concurrent use.
//
// # Composition
//
//   - [ComposeRight]: left to right, ComposeRight(f, g, h)(x) == h(g(f(x)))
//   - [Compose]: right to left, Compose(f, g, h)(x) == f(g(h(x)))
//   - [Identity]: the empty chain
//
// Only the entry function of a chain receives several arguments; every
// later function receives the single result of its predecessor. The first
// error stops the chain.
//
// # Sequences
//
//   - [MapMethod], [FilterMethod], [ReduceMethod], [SliceMethod]: receiver-first natives
//   - [Map], [Filter], [Reduce], [Tail]: receiver-last forms built with Reverse
//   - [CurriedMap], [CurriedFilter], [CurriedReduce]: curried with arity 2, 2, 3
//
// # Errors
//
// The combinators report their own failures with the sentinel errors
// [ErrInvalidReceiver], [ErrEmptyChain], [ErrNotCallable], [ErrNotSequence],
// [ErrNotPredicate], [ErrEmptyReduce], [ErrUnaryArgs], and [ErrArgument].
// Errors from user functions are returned unchanged.
//
// # Example
//
//	sum3 := MustLift(func(x, y, z int) int { return x + y + z })
//	plusFive, _ := ApplyEach(Curry(sum3, 3), []any{1}, []any{4})
//	r, _ := Apply(plusFive, 9)
//	// r == 14
//
//	inc := MustLift(func(x int) int { return x + 1 })
//	triple := MustLift(func(x int) int { return x * 3 })
//	r, _ = Compose(inc, triple)(4)
//	// r == 13
package fp
