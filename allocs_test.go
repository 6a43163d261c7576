// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp_test

import (
	"testing"

	"code.hybscloud.com/fp"
)

// Evaluating a chain allocates at most the argument slice of each step.
func TestComposeAllocations(t *testing.T) {
	const steps = 4
	id := func(args ...any) (any, error) { return args[0], nil }
	f := fp.ComposeRight(id, id, id, id)
	v := any(struct{}{})
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = f(v)
	})
	if allocs > steps {
		t.Errorf("ComposeRight chain allocs = %v; want at most %d", allocs, steps)
	}
}
