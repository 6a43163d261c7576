// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

import "errors"

// Errors detected by the combinators themselves.
// Errors returned by user callables are propagated unchanged and never wrapped.
var (
	// ErrInvalidReceiver is returned by DataLast when called with no arguments.
	ErrInvalidReceiver = errors.New("fp: no argument to use as receiver")

	// ErrEmptyChain is returned by an empty composition chain that is not
	// invoked with exactly one argument.
	ErrEmptyChain = errors.New("fp: empty composition chain needs exactly one argument")

	// ErrNotCallable is returned when a value cannot be invoked.
	ErrNotCallable = errors.New("fp: value is not callable")

	// ErrNotSequence is returned by the sequence methods for a receiver
	// that is neither a slice nor an array.
	ErrNotSequence = errors.New("fp: receiver is not a sequence")

	// ErrNotPredicate is returned by FilterMethod when the predicate
	// produces a non-bool result.
	ErrNotPredicate = errors.New("fp: predicate result is not a bool")

	// ErrEmptyReduce is returned by ReduceMethod when folding an empty
	// sequence without an initial value.
	ErrEmptyReduce = errors.New("fp: reduce of empty sequence with no initial value")

	// ErrUnaryArgs is returned by a node from CurryUnary when a call does
	// not carry exactly one argument.
	ErrUnaryArgs = errors.New("fp: unary curried call needs exactly one argument")

	// ErrArgument is returned when an argument cannot be passed to a
	// lifted Go function or a sequence method.
	ErrArgument = errors.New("fp: invalid argument")
)
