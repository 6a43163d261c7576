// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

import (
	"fmt"
	"math"
	"reflect"
)

// Bridge between ordinary Go functions and Func.
// Lift turns a typed function into a Func; As turns a Func back into a
// typed function. Both directions go through reflection only when the
// value is not already one of the common shapes handled directly.

var errorType = reflect.TypeFor[error]()

// Lift converts fn into a Func.
//
// Accepted values are Func, *Curried, func(...any) (any, error), and any
// other non-nil Go function. For the general case the arguments are
// matched positionally against the parameter list:
//   - surplus arguments of a non-variadic function are dropped
//   - missing arguments are an error wrapping ErrArgument
//   - nil becomes the zero value of a nilable parameter type
//   - numeric arguments convert to other numeric parameter types when the
//     value is preserved; overflow, a fractional part for an integer type,
//     or a negative value for an unsigned type is an error
//   - a callable argument for a func-typed parameter is adapted with As
//
// Results map as follows: none → nil; a single error → (nil, err);
// (v, error) → (v, err); one value → v; anything else → []any.
//
// Lift returns an error wrapping ErrNotCallable for non-function values.
func Lift(fn any) (Func, error) {
	if c, ok := fn.(*Curried); ok {
		if c == nil {
			return nil, ErrNotCallable
		}
		return c.Call, nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	switch f := fn.(type) {
	case Func:
		return f, nil
	case func(...any) (any, error):
		return f, nil
	case func(any) any:
		return func(args ...any) (any, error) {
			if len(args) < 1 {
				return nil, missingArgs(1, len(args))
			}
			return f(args[0]), nil
		}, nil
	case func(any) bool:
		return func(args ...any) (any, error) {
			if len(args) < 1 {
				return nil, missingArgs(1, len(args))
			}
			return f(args[0]), nil
		}, nil
	case func(any, any) any:
		return func(args ...any) (any, error) {
			if len(args) < 2 {
				return nil, missingArgs(2, len(args))
			}
			return f(args[0], args[1]), nil
		}, nil
	}
	return reflectFunc(v), nil
}

// MustLift is like Lift but panics if fn is not callable.
// It is intended for package-level adapters built from known functions.
func MustLift(fn any) Func {
	f, err := Lift(fn)
	if err != nil {
		panic(err)
	}
	return f
}

// reflectFunc builds a Func calling v through reflection.
func reflectFunc(v reflect.Value) Func {
	t := v.Type()
	return func(args ...any) (any, error) {
		in, err := bindArgs(t, args)
		if err != nil {
			return nil, err
		}
		return collectResults(t, v.Call(in))
	}
}

// bindArgs matches args against the parameter list of t.
func bindArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	if len(args) < fixed {
		return nil, missingArgs(fixed, len(args))
	}
	n := fixed
	if t.IsVariadic() {
		n = len(args)
	}
	in := make([]reflect.Value, n)
	for i := range n {
		var pt reflect.Type
		if i < fixed {
			pt = t.In(i)
		} else {
			pt = t.In(fixed).Elem()
		}
		av, err := argValue(args[i], pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = av
	}
	return in, nil
}

// argValue converts a into a value assignable to a parameter of type pt.
func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrArgument, pt)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(pt.Kind()) {
		return convertNumeric(v, pt)
	}
	if pt.Kind() == reflect.Func {
		if f, err := Lift(a); err == nil {
			return makeTyped(pt, f), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrArgument, v.Type(), pt)
}

func collectResults(t reflect.Type, out []reflect.Value) (any, error) {
	switch n := t.NumOut(); {
	case n == 0:
		return nil, nil
	case n == 1 && t.Out(0) == errorType:
		return nil, asError(out[0])
	case n == 1:
		return out[0].Interface(), nil
	case n == 2 && t.Out(1) == errorType:
		if err := asError(out[1]); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		vals := make([]any, n)
		for i := range out {
			vals[i] = out[i].Interface()
		}
		return vals, nil
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// convertNumeric converts the numeric value v to t, refusing any
// conversion that would change the value other than float rounding.
func convertNumeric(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	target := reflect.Zero(t)
	lossy := false
	switch {
	case isInt(v.Kind()):
		i := v.Int()
		switch {
		case isInt(t.Kind()):
			lossy = target.OverflowInt(i)
		case isUint(t.Kind()):
			lossy = i < 0 || target.OverflowUint(uint64(i))
		}
	case isUint(v.Kind()):
		u := v.Uint()
		switch {
		case isInt(t.Kind()):
			lossy = u > math.MaxInt64 || target.OverflowInt(int64(u))
		case isUint(t.Kind()):
			lossy = target.OverflowUint(u)
		}
	default:
		f := v.Float()
		switch {
		case isInt(t.Kind()):
			lossy = f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 ||
				target.OverflowInt(int64(f))
		case isUint(t.Kind()):
			lossy = f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 ||
				target.OverflowUint(uint64(f))
		default:
			lossy = !math.IsInf(f, 0) && !math.IsNaN(f) && target.OverflowFloat(f)
		}
	}
	if lossy {
		return reflect.Value{}, fmt.Errorf("%w: %s %v does not fit %s", ErrArgument, v.Type(), v, t)
	}
	return v.Convert(t), nil
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func missingArgs(want, got int) error {
	return fmt.Errorf("%w: want %d arguments, got %d", ErrArgument, want, got)
}

// As converts fn into the typed function F.
//
// The returned function passes its arguments to fn and converts the result
// to F's result types. If F's last result is error, failures of fn are
// returned there; otherwise they panic, since F has no way to report them.
// As returns an error wrapping ErrArgument if F is not a function type.
//
// Example:
//
//	inc, _ := As[func(int) int](Partial(add, 1))
//	inc(41) // 42
func As[F any](fn Func) (F, error) {
	var zero F
	t := reflect.TypeFor[F]()
	if t.Kind() != reflect.Func {
		return zero, fmt.Errorf("%w: %s is not a function type", ErrArgument, t)
	}
	if fn == nil {
		return zero, ErrNotCallable
	}
	return makeTyped(t, fn).Interface().(F), nil
}

// makeTyped wraps fn in a reflect.MakeFunc of type t.
func makeTyped(t reflect.Type, fn Func) reflect.Value {
	return reflect.MakeFunc(t, func(in []reflect.Value) []reflect.Value {
		args := make([]any, 0, len(in))
		for i, v := range in {
			if t.IsVariadic() && i == len(in)-1 {
				for j := range v.Len() {
					args = append(args, v.Index(j).Interface())
				}
				continue
			}
			args = append(args, v.Interface())
		}
		res, err := fn(args...)
		return typedResults(t, res, err)
	})
}

func typedResults(t reflect.Type, res any, err error) []reflect.Value {
	n := t.NumOut()
	hasErr := n > 0 && t.Out(n-1) == errorType
	if err != nil && !hasErr {
		panic(err)
	}
	out := make([]reflect.Value, n)
	values := n
	if hasErr {
		values--
		if err != nil {
			out[n-1] = reflect.ValueOf(&err).Elem()
		} else {
			out[n-1] = reflect.Zero(errorType)
		}
	}
	if values == 0 {
		return out
	}
	if values == 1 {
		out[0] = resultValue(res, t.Out(0), err)
		return out
	}
	vals, _ := res.([]any)
	for i := range values {
		var r any
		if i < len(vals) {
			r = vals[i]
		}
		out[i] = resultValue(r, t.Out(i), err)
	}
	return out
}

// resultValue converts r to rt. A failed call yields the zero value.
func resultValue(r any, rt reflect.Type, err error) reflect.Value {
	if err != nil || r == nil {
		return reflect.Zero(rt)
	}
	v := reflect.ValueOf(r)
	if v.Type().AssignableTo(rt) {
		return v
	}
	if isNumeric(v.Kind()) && isNumeric(rt.Kind()) {
		cv, err := convertNumeric(v, rt)
		if err != nil {
			panic(fmt.Errorf("result: %w", err))
		}
		return cv
	}
	panic(fmt.Errorf("%w: result %s is not assignable to %s", ErrArgument, v.Type(), rt))
}
