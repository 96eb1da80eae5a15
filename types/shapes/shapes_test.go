// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	require.False(t, invalidShape.Ok())

	shape0 := Make(dtypes.Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Len(t, shape0.Dimensions, 0)
	require.Equal(t, 1, shape0.Size())

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	require.True(t, shape1.Ok())
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, 4*3*2, shape1.Size())
	require.True(t, shape1.FullyDefined())
	require.Equal(t, "(Float32)[4 3 2]", shape1.String())

	// Zero-sized axes are valid: they describe degenerate (empty) tensors.
	shape2 := Make(dtypes.Float32, 4, 0, 2)
	require.True(t, shape2.Ok())
	require.Equal(t, 0, shape2.Size())

	require.Panics(t, func() { Make(dtypes.Float32, 4, -2) })
}

func TestSymbolicDims(t *testing.T) {
	shape := Make(dtypes.Float16, SymbolicDim, 3, 8, 8)
	require.True(t, shape.Ok())
	require.False(t, shape.FullyDefined())
	require.True(t, shape.IsSymbolicDim(0))
	require.False(t, shape.IsSymbolicDim(1))
	require.Equal(t, SymbolicDim, shape.Size())
	require.Equal(t, "(Float16)[? 3 8 8]", shape.String())

	require.True(t, shape.Equal(Make(dtypes.Float16, SymbolicDim, 3, 8, 8)))
	require.False(t, shape.Equal(Make(dtypes.Float16, 1, 3, 8, 8)))
	require.False(t, shape.Equal(Make(dtypes.Float32, SymbolicDim, 3, 8, 8)))
	require.True(t, shape.EqualDimensions(Make(dtypes.Float32, SymbolicDim, 3, 8, 8)))
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 3, shape.Dim(1))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 3, shape.Dim(-2))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestClone(t *testing.T) {
	shape := Make(dtypes.Float32, SymbolicDim, 3, 5)
	clone := shape.Clone()
	require.True(t, shape.Equal(clone))
	clone.Dimensions[1] = 7
	require.Equal(t, 3, shape.Dimensions[1])
}
