// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/fp"
)

func TestIdentity(t *testing.T) {
	got, err := fp.Identity("x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = fp.Identity()
	require.ErrorIs(t, err, fp.ErrEmptyChain)
}

func TestApply(t *testing.T) {
	got, err := fp.Apply(func(a, b int) int { return a - b }, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = fp.Apply(fp.Curry(sumThree, 3), 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	_, err = fp.Apply(14, 1)
	require.ErrorIs(t, err, fp.ErrNotCallable)
}

func TestApplyEach(t *testing.T) {
	got, err := fp.ApplyEach(addOne)
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = fp.ApplyEach(fp.Curry(sumThree, 3), []any{1}, []any{4, 9})
	require.NoError(t, err)
	assert.Equal(t, 14, got)

	// One group too many: the saturated result is not callable.
	_, err = fp.ApplyEach(fp.Curry(sumThree, 3), []any{1, 4, 9}, []any{1})
	require.ErrorIs(t, err, fp.ErrNotCallable)
}

func TestTry(t *testing.T) {
	r := fp.Try(sumThree, 1, 4, 9)
	require.True(t, r.IsOk())
	assert.Equal(t, 14, r.MustGet())

	boom := errors.New("boom")
	r = fp.Try(func(args ...any) (any, error) { return nil, boom })
	require.True(t, r.IsError())
	assert.Same(t, boom, r.Error())
}
