// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// Sequence operations.
//
// The *Method functions are the receiver-first natives: the sequence comes
// first, as the receiver of a method call would. Map, Filter, Reduce, and
// Tail are their receiver-last forms built with Reverse, and the Curried*
// values are those forms passed through Curry with a fixed arity.
//
// A sequence is a []any or any other slice or array; other slices are
// copied into a []any. Results are always fresh []any values.

var (
	// Map(f, seq) applies f to every element of seq, in order.
	Map = Reverse(MapMethod)

	// Filter(pred, seq) keeps the elements for which pred returns true.
	Filter = Reverse(FilterMethod)

	// Reduce(initial, f, seq) folds seq from the left:
	// f(f(f(initial, seq[0]), seq[1]), seq[2])...
	// Reduce(f, seq) seeds the fold with the first element.
	Reduce = Reverse(ReduceMethod)

	// Tail(seq) returns every element but the first.
	Tail = Partial(Reverse(SliceMethod), 1)
)

var (
	// CurriedMap is Map curried with arity 2: CurriedMap.Call(f) returns a
	// node waiting for the sequence.
	CurriedMap = Curry(Map, 2)

	// CurriedFilter is Filter curried with arity 2.
	CurriedFilter = Curry(Filter, 2)

	// CurriedReduce is Reduce curried with arity 3: initial, then the
	// combining function, then the sequence.
	CurriedReduce = Curry(Reduce, 3)
)

// MapMethod applies args[0] to every element of recv.
// The first callback error aborts the mapping and is returned unchanged.
func MapMethod(recv any, args ...any) (any, error) {
	seq, f, err := seqAndFunc("map", recv, args)
	if err != nil {
		return nil, err
	}
	var cbErr error
	out := lo.Map(seq, func(item any, _ int) any {
		if cbErr != nil {
			return nil
		}
		v, err := f(item)
		if err != nil {
			cbErr = err
		}
		return v
	})
	if cbErr != nil {
		return nil, cbErr
	}
	return out, nil
}

// FilterMethod keeps the elements of recv for which the predicate args[0]
// returns true. A predicate result that is not a bool fails with
// ErrNotPredicate.
func FilterMethod(recv any, args ...any) (any, error) {
	seq, pred, err := seqAndFunc("filter", recv, args)
	if err != nil {
		return nil, err
	}
	var cbErr error
	out := lo.Filter(seq, func(item any, _ int) bool {
		if cbErr != nil {
			return false
		}
		v, err := pred(item)
		if err != nil {
			cbErr = err
			return false
		}
		keep, ok := v.(bool)
		if !ok {
			cbErr = fmt.Errorf("%w: got %T", ErrNotPredicate, v)
		}
		return keep
	})
	if cbErr != nil {
		return nil, cbErr
	}
	return out, nil
}

// ReduceMethod folds recv from the left with the combining function
// args[0], starting from args[1]. Without args[1] the first element is the
// starting value and the fold runs over the rest; an empty recv then
// fails with ErrEmptyReduce.
func ReduceMethod(recv any, args ...any) (any, error) {
	seq, f, err := seqAndFunc("reduce", recv, args)
	if err != nil {
		return nil, err
	}
	var initial any
	if len(args) > 1 {
		initial = args[1]
	} else {
		if len(seq) == 0 {
			return nil, ErrEmptyReduce
		}
		initial, seq = seq[0], seq[1:]
	}
	var cbErr error
	out := lo.Reduce(seq, func(acc any, item any, _ int) any {
		if cbErr != nil {
			return acc
		}
		v, err := f(acc, item)
		if err != nil {
			cbErr = err
		}
		return v
	}, initial)
	if cbErr != nil {
		return nil, cbErr
	}
	return out, nil
}

// SliceMethod returns a copy of recv[start:end], with start taken from
// args[0] (default 0) and end from args[1] (default len). Negative indices
// count from the end; out-of-range indices are clamped.
func SliceMethod(recv any, args ...any) (any, error) {
	seq, err := toSeq(recv)
	if err != nil {
		return nil, err
	}
	start, end := 0, len(seq)
	if len(args) > 0 {
		if start, err = toIndex(args[0], len(seq)); err != nil {
			return nil, err
		}
	}
	if len(args) > 1 {
		if end, err = toIndex(args[1], len(seq)); err != nil {
			return nil, err
		}
	}
	part := lo.Slice(seq, start, end)
	out := make([]any, len(part))
	copy(out, part)
	return out, nil
}

func seqAndFunc(op string, recv any, args []any) ([]any, Func, error) {
	seq, err := toSeq(recv)
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: %s needs a function", ErrArgument, op)
	}
	f, err := Lift(args[0])
	if err != nil {
		return nil, nil, err
	}
	return seq, f, nil
}

// toSeq views recv as a []any. A []any is returned as is and must only be
// read; other slices and arrays are copied.
func toSeq(recv any) ([]any, error) {
	if s, ok := recv.([]any); ok {
		return s, nil
	}
	v := reflect.ValueOf(recv)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotSequence, recv)
}

// toIndex resolves a slice index against a sequence of length n.
func toIndex(a any, n int) (int, error) {
	v := reflect.ValueOf(a)
	var i int
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i = int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := v.Uint(); u > uint64(n) {
			i = n
		} else {
			i = int(u)
		}
	default:
		return 0, fmt.Errorf("%w: index %T", ErrArgument, a)
	}
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n), nil
}
