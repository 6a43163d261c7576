// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

// Argument-order adapters turn a receiver-style Method into a plain Func.
// Neither adapter retains or mutates the caller's argument slice.

// Reverse returns a Func that reverses its arguments and calls m with the
// first reversed argument as receiver.
//
// For arguments [a0, a1, ..., an] it calls m(an, a(n-1), ..., a0), which turns
// receiver-first operations into receiver-last functions:
//
//	Reverse(MapMethod)(f, seq)            // MapMethod(seq, f)
//	Reverse(ReduceMethod)(init, f, seq)   // ReduceMethod(seq, f, init)
//
// Called with no arguments, m receives a nil receiver.
func Reverse(m Method) Func {
	return func(args ...any) (any, error) {
		if len(args) == 0 {
			return m(nil)
		}
		rest := make([]any, len(args)-1)
		for i := range rest {
			rest[i] = args[len(args)-2-i]
		}
		return m(args[len(args)-1], rest...)
	}
}

// DataLast returns a Func that uses its last argument as receiver and
// passes the preceding arguments to m in their original order.
//
//	DataLast(MapMethod)(f, seq)   // MapMethod(seq, f)
//
// Called with no arguments, the Func returns ErrInvalidReceiver without
// calling m.
func DataLast(m Method) Func {
	return func(args ...any) (any, error) {
		if len(args) == 0 {
			return nil, ErrInvalidReceiver
		}
		last := len(args) - 1
		return m(args[last], args[:last:last]...)
	}
}
