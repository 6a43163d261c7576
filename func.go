// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

// Func is the uniform callable of the package.
// It accepts any number of positional arguments and returns a single value
// or an error. Combinators take Funcs and return Funcs, so every adapter,
// curried node, and composition chain can be fed into every other.
type Func func(args ...any) (any, error)

// Method is a receiver-style operation: recv is the subject the operation
// acts on, args are the remaining arguments in call order.
// MapMethod(seq, f) corresponds to seq.map(f) in languages with methods
// on sequences.
type Method func(recv any, args ...any) (any, error)
