// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp

import "github.com/samber/mo"

// Try invokes fn with args and folds the outcome into a mo.Result.
func Try(fn Func, args ...any) mo.Result[any] {
	v, err := fn(args...)
	return mo.TupleToResult[any](v, err)
}
