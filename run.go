// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

// Identity returns its single argument unchanged.
// It is the value of an empty composition chain; called with any other
// number of arguments it returns ErrEmptyChain.
func Identity(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, ErrEmptyChain
	}
	return args[0], nil
}

// Apply invokes target with args.
// target may be a Func, a *Curried, or any Go function accepted by Lift.
// Returns an error wrapping ErrNotCallable for anything else.
func Apply(target any, args ...any) (any, error) {
	f, err := Lift(target)
	if err != nil {
		return nil, err
	}
	return f(args...)
}

// ApplyEach feeds argument groups to target one after the other, applying
// each group to the result of the previous application. It is the
// call-chain form f(a)(b, c)(d) written as
//
//	ApplyEach(f, []any{a}, []any{b, c}, []any{d})
//
// With no groups it returns target unchanged. The first error stops the chain.
func ApplyEach(target any, groups ...[]any) (any, error) {
	v := target
	for _, g := range groups {
		var err error
		if v, err = Apply(v, g...); err != nil {
			return nil, err
		}
	}
	return v, nil
}
