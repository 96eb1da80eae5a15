// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package ops defines the MIL pooling operator family and its type/shape
// inference: avg_pool, l2_pool and max_pool.
//
// The three operators share one parameter set (kernel sizes, strides, padding
// policy, rounding mode) and one output-shape contract; they differ only in a
// closed set of variant-specific constraints, dispatched by an explicit
// switch on the pool kind. All inference is pure and synchronous: nothing is
// mutated, so independent nodes can be inferred concurrently without
// coordination.
package ops

import (
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/webfutureiorepo/apple-coremltools/mil"
	"github.com/webfutureiorepo/apple-coremltools/types/shapes"
	"github.com/webfutureiorepo/apple-coremltools/types/xslices"
)

func init() {
	mil.RegisterOp("avg_pool", mil.TargetIOS15)
	mil.RegisterOp("l2_pool", mil.TargetIOS15)
	mil.RegisterOp("max_pool", mil.TargetIOS15)
}

// typeDomainT is the element-type domain shared by the pooling family.
var typeDomainT = []dtypes.DType{dtypes.Float16, dtypes.Float32}

// PoolKind selects the reduction applied over each window.
type PoolKind int

const (
	// PoolAvg averages the window ("avg_pool").
	PoolAvg PoolKind = iota
	// PoolL2 takes the L2 norm of the window ("l2_pool"). Supports only 1 or
	// 2 spatial dimensions.
	PoolL2
	// PoolMax takes the maximum of the window ("max_pool").
	PoolMax
)

// Pool is one operator of the pooling family, with its compile-time-constant
// parameters bound. Create it with AvgPool, L2Pool or MaxPool and configure
// the optional parameters with the chained setters.
//
// The input tensor is shaped [batch, channels, spatial...], rank 3 to 5
// (1 to 3 spatial dimensions), element type fp16 or fp32. The batch and
// channel dimensions may be symbolic.
//
// The output keeps rank, element type, batch and channel dimensions; each
// spatial dimension i becomes, with ceilMode false (the default):
//
//	out[i] = floor((in[i] + padTotal[i] - kernelSizes[i]) / strides[i]) + 1
//
// With ceilMode true, ceil replaces floor followed by a boundary correction;
// see the ceil_mode notes on CeilMode.
type Pool struct {
	kind        PoolKind
	kernelSizes []int
	padType     string

	strides   []int // nil when unset, defaults to all 1s.
	customPad []int // nil when unset; required iff padType is "custom".
	ceilMode  bool

	excludePaddingFromAverage bool // avg_pool only.
}

// AvgPool creates an average-pooling operator.
//
// kernelSizes gives the window size per spatial dimension; padType is one of
// "valid", "same", "custom" or "same_lower" (case-insensitive).
func AvgPool(kernelSizes []int, padType string) *Pool {
	return &Pool{kind: PoolAvg, kernelSizes: slices.Clone(kernelSizes), padType: padType}
}

// L2Pool creates an L2-norm-pooling operator. It only supports 1 or 2
// spatial dimensions. See AvgPool for the parameters.
func L2Pool(kernelSizes []int, padType string) *Pool {
	return &Pool{kind: PoolL2, kernelSizes: slices.Clone(kernelSizes), padType: padType}
}

// MaxPool creates a max-pooling operator. See AvgPool for the parameters.
func MaxPool(kernelSizes []int, padType string) *Pool {
	return &Pool{kind: PoolMax, kernelSizes: slices.Clone(kernelSizes), padType: padType}
}

// Strides sets the stride per spatial dimension. The default is all 1s.
// It returns the modified Pool, so calls can be cascaded.
func (p *Pool) Strides(strides ...int) *Pool {
	p.strides = slices.Clone(strides)
	return p
}

// CustomPad sets the explicit padding amounts, two entries per spatial
// dimension: pad[2*i] before and pad[2*i+1] after dimension i. It must be
// given iff the pad type is "custom".
func (p *Pool) CustomPad(pad ...int) *Pool {
	p.customPad = slices.Clone(pad)
	return p
}

// CeilMode selects ceil instead of floor in the output-extent formula.
//
// Only applicable with pad types "valid" and "custom" (not "same"), for 1 or
// 2 spatial dimensions, and any explicit padding must be symmetric. After
// rounding up, an extent is reduced by one if the last window would start
// entirely inside the trailing padding, matching PyTorch's ceil_mode.
func (p *Pool) CeilMode(enabled bool) *Pool {
	p.ceilMode = enabled
	return p
}

// ExcludePaddingFromAverage, for avg_pool only, excludes padded positions
// from the averaging denominator. It does not affect the output shape; it is
// carried for the downstream numeric computation.
func (p *Pool) ExcludePaddingFromAverage(exclude bool) *Pool {
	p.excludePaddingFromAverage = exclude
	return p
}

// OpType returns the MIL operator name. It implements mil.Operation.
func (p *Pool) OpType() string {
	switch p.kind {
	case PoolAvg:
		return "avg_pool"
	case PoolL2:
		return "l2_pool"
	case PoolMax:
		return "max_pool"
	}
	return "invalid_pool"
}

// TypeInference validates the bound parameters against the input tensor type
// x and the compilation target, and computes the output tensor type. It
// implements mil.Operation.
//
// On any illegal parameter combination it returns an error wrapping
// mil.ErrInvalidParameter; there is no partial success.
func (p *Pool) TypeInference(x shapes.Shape, target mil.Target) (output shapes.Shape, err error) {
	err = exceptions.TryCatch[error](func() { output = p.typeInference(x, target) })
	if err != nil {
		output = shapes.Invalid()
	}
	return
}

func (p *Pool) typeInference(x shapes.Shape, target mil.Target) shapes.Shape {
	if !x.Ok() {
		mil.InvalidParameterf("%s: input tensor type is invalid", p.OpType())
	}
	rank := x.Rank()
	numSpatialDims := rank - 2
	if rank < 3 || rank > 5 {
		mil.InvalidParameterf("%s: input must be rank 3 to 5, shaped [batch, channels, spatial...], got %s",
			p.OpType(), x)
	}

	// Variant-specific constraints, ahead of the shared cascade.
	switch p.kind {
	case PoolL2:
		if numSpatialDims > 2 {
			mil.InvalidParameterf("l2_pool only supports 1 or 2 spatial dimensions, got %d (input %s)",
				numSpatialDims, x)
		}
	case PoolAvg, PoolMax:
		// No extra constraints.
	default:
		mil.InvalidParameterf("unknown pool kind %d", p.kind)
	}
	if p.excludePaddingFromAverage && p.kind != PoolAvg {
		mil.InvalidParameterf("%s: exclude_padding_from_average is only a parameter of avg_pool", p.OpType())
	}

	if !slices.Contains(typeDomainT, x.DType) {
		mil.InvalidParameterf("%s: input element type must be one of %v, got %s", p.OpType(), typeDomainT, x.DType)
	}

	// Parameter defaulting, from the spatial rank.
	if len(p.kernelSizes) != numSpatialDims {
		mil.InvalidParameterf("%s: kernel_sizes must have one entry per spatial dimension (%d), got %v",
			p.OpType(), numSpatialDims, p.kernelSizes)
	}
	strides := p.strides
	if strides == nil {
		strides = xslices.SliceWithValue(numSpatialDims, 1)
	} else if len(strides) != numSpatialDims {
		mil.InvalidParameterf("%s: strides must have one entry per spatial dimension (%d), got %v",
			p.OpType(), numSpatialDims, strides)
	}
	for i, kernel := range p.kernelSizes {
		if kernel < 1 {
			mil.InvalidParameterf("%s: kernel_sizes[%d]=%d must be positive", p.OpType(), i, kernel)
		}
	}
	for i, stride := range strides {
		if stride < 1 {
			mil.InvalidParameterf("%s: strides[%d]=%d must be positive", p.OpType(), i, stride)
		}
	}

	// Validation cascade: first failing check aborts.
	padType, padTypeErr := PadTypeString(strings.ToLower(p.padType))
	if padTypeErr != nil {
		mil.InvalidParameterf("%s: unrecognized value of pad_type: %q", p.OpType(), p.padType)
	}
	if padType == PadTypeCustom && p.customPad == nil {
		mil.InvalidParameterf("%s: pad must be provided when pad_type=custom", p.OpType())
	}
	if padType != PadTypeCustom && p.customPad != nil {
		mil.InvalidParameterf("%s: pad must only be provided when pad_type=custom, pad_type is %s",
			p.OpType(), padType)
	}
	if p.customPad != nil {
		if len(p.customPad) != 2*numSpatialDims {
			mil.InvalidParameterf("%s: pad must have two entries per spatial dimension (%d), got %v",
				p.OpType(), 2*numSpatialDims, p.customPad)
		}
		for i, pad := range p.customPad {
			if pad < 0 {
				mil.InvalidParameterf("%s: pad[%d]=%d must be non-negative", p.OpType(), i, pad)
			}
		}
	}
	if p.ceilMode {
		if numSpatialDims > 2 {
			mil.InvalidParameterf("%s: ceil_mode only supported for 1D or 2D pool, got %d spatial dimensions",
				p.OpType(), numSpatialDims)
		}
		if padType == PadTypeSame {
			mil.InvalidParameterf("%s: ceil_mode must be false when pad_type=same", p.OpType())
		}
		if p.customPad != nil {
			for i := 0; i < numSpatialDims; i++ {
				if p.customPad[2*i] != p.customPad[2*i+1] {
					mil.InvalidParameterf("%s: padding must be symmetric if ceil_mode is true, got pad[%d]=%d, pad[%d]=%d",
						p.OpType(), 2*i, p.customPad[2*i], 2*i+1, p.customPad[2*i+1])
				}
			}
		}
	}
	// same_lower padding is not supported on the earliest pooling target.
	if target == mil.TargetIOS15 && padType == PadTypeSameLower {
		mil.InvalidParameterf("%s: target %s does not support pad_type=same_lower (requires %s or later)",
			p.OpType(), target, mil.TargetIOS16)
	}

	spatialOut := spatialOutputShape(padType, x.Dimensions[2:], p.kernelSizes, strides, p.customPad, p.ceilMode)
	outputDims := make([]int, 0, rank)
	outputDims = append(outputDims, x.Dimensions[:2]...)
	outputDims = append(outputDims, spatialOut...)
	// Built directly instead of with shapes.Make: degenerate (zero or
	// negative) spatial extents are propagated, not rejected here.
	return shapes.Shape{DType: x.DType, Dimensions: outputDims}
}
