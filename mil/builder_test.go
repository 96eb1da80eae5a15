// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package mil_test

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"

	"github.com/webfutureiorepo/apple-coremltools/mil"
	"github.com/webfutureiorepo/apple-coremltools/mil/ops"
	"github.com/webfutureiorepo/apple-coremltools/types/shapes"
)

func TestBuilderPipeline(t *testing.T) {
	b := mil.NewBuilder("main")
	x := b.Input("x", dtypes.Float32, shapes.SymbolicDim, 3, 32, 32)
	pooled := b.Apply(ops.MaxPool([]int{2, 2}, "valid").Strides(2, 2), x)
	pooled = b.Apply(ops.AvgPool([]int{3, 3}, "same"), pooled)
	b.Output(pooled)

	require.NoError(t, b.Err())
	require.Equal(t, "main", b.Name())
	require.True(t, pooled.Shape().Equal(
		shapes.Make(dtypes.Float32, shapes.SymbolicDim, 3, 16, 16)))
	require.Len(t, b.Outputs(), 1)
	require.Len(t, b.Operations(), 2)
	require.Equal(t, "max_pool_0", b.Operations()[0].Output.Name())
	require.Equal(t, "avg_pool_1", b.Operations()[1].Output.Name())
}

func TestBuilderTargetGating(t *testing.T) {
	// The pooling family is registered from iOS15 on.
	b := mil.NewBuilder("main").Target(mil.TargetIOS14)
	x := b.Input("x", dtypes.Float32, 1, 3, 32, 32)
	out := b.Apply(ops.MaxPool([]int{2, 2}, "valid"), x)
	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)
	require.False(t, out.Shape().Ok())
}

func TestBuilderUnregisteredOp(t *testing.T) {
	b := mil.NewBuilder("main")
	x := b.Input("x", dtypes.Float32, 1, 3, 32, 32)
	b.Apply(bogusOp{}, x)
	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)
}

type bogusOp struct{}

func (bogusOp) OpType() string { return "bogus" }
func (bogusOp) TypeInference(x shapes.Shape, _ mil.Target) (shapes.Shape, error) {
	return x, nil
}

func TestBuilderFirstErrorSticks(t *testing.T) {
	b := mil.NewBuilder("main")
	x := b.Input("x", dtypes.Float32, 1, 3, 10)
	bad := b.Apply(ops.MaxPool([]int{3}, "reflect"), x)
	// Follow-up calls are no-ops; the recorded error is the pad_type one.
	after := b.Apply(ops.MaxPool([]int{3}, "valid"), bad)
	b.Output(after)

	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)
	require.Contains(t, b.Err().Error(), "pad_type")
	require.Empty(t, b.Outputs())
}

func TestBuilderConsts(t *testing.T) {
	b := mil.NewBuilder("main")

	weights := b.Const("weights", []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, b.Err())
	require.True(t, weights.IsConst())
	require.True(t, weights.Shape().Equal(shapes.Make(dtypes.Float32, 2, 3)))

	halves := b.Const("halves", mil.Float16Values(0.5, 1.5), 2)
	require.NoError(t, b.Err())
	require.Equal(t, dtypes.Float16, halves.DType())

	flags := b.Const("flags", []bool{true}, 1)
	require.NoError(t, b.Err())
	require.Equal(t, dtypes.Bool, flags.DType())
	require.False(t, b.Input("x", dtypes.Float32, 1, 1, 4).IsConst())
}

func TestBuilderConstErrors(t *testing.T) {
	b := mil.NewBuilder("main")
	b.Const("badlen", []float32{1, 2, 3}, 2, 2)
	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)

	b = mil.NewBuilder("main")
	b.Const("badtype", []float64{1, 2}, 2)
	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)

	b = mil.NewBuilder("main")
	b.Const("symbolic", []float32{1, 2}, shapes.SymbolicDim)
	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)

	b = mil.NewBuilder("main")
	b.Input("x", dtypes.Float32, 1, 1, 4)
	b.Const("x", []float32{1}, 1)
	require.ErrorIs(t, b.Err(), mil.ErrInvalidParameter)
}

func TestRegisteredOps(t *testing.T) {
	names := mil.RegisteredOps()
	require.Contains(t, names, "avg_pool")
	require.Contains(t, names, "l2_pool")
	require.Contains(t, names, "max_pool")

	minTarget, found := mil.OpAvailability("max_pool")
	require.True(t, found)
	require.Equal(t, mil.TargetIOS15, minTarget)

	_, found = mil.OpAvailability("bogus")
	require.False(t, found)
}
