// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"github.com/webfutureiorepo/apple-coremltools/types/shapes"
)

// spatialOutputShape computes, per spatial dimension, the pooled output
// extent from the input extent, kernel size, stride, padding policy and
// rounding mode. Lengths and value ranges of the parameters must have been
// validated by the caller; customPad is only read when padType is
// PadTypeCustom.
//
// Floor mode:
//
//	out[i] = floor((in[i] + padTotal[i] - kernel[i]) / stride[i]) + 1
//
// Ceil mode replaces floor by ceil, then decrements out[i] when the last
// window would start entirely inside the trailing padding:
//
//	if (out[i]-1)*stride[i] >= in[i] + padBefore[i] and padTotal[i] > 0
//
// A kernel larger than the padded input yields a non-positive extent; that is
// allowed to propagate, callers wanting strictly positive outputs must check
// separately. A symbolic input extent yields a symbolic output extent.
func spatialOutputShape(padType PadType, inputShape, kernelShape, strides, customPad []int, ceilMode bool) []int {
	outputShape := make([]int, len(kernelShape))
	for i := range outputShape {
		in := inputShape[i]
		if in == shapes.SymbolicDim {
			outputShape[i] = shapes.SymbolicDim
			continue
		}
		kernel, stride := kernelShape[i], strides[i]
		var padBefore, padTotal int
		switch padType {
		case PadTypeValid:
			// No padding.
		case PadTypeCustom:
			padBefore = customPad[2*i]
			padTotal = customPad[2*i] + customPad[2*i+1]
		case PadTypeSame:
			padTotal = sameTotalPad(in, kernel, stride)
			padBefore = padTotal / 2 // Odd remainder goes after the dimension.
		case PadTypeSameLower:
			padTotal = sameTotalPad(in, kernel, stride)
			padBefore = (padTotal + 1) / 2 // Odd remainder goes before the dimension.
		}
		if ceilMode {
			out := ceilDiv(in+padTotal-kernel, stride) + 1
			if (out-1)*stride >= in+padBefore && padTotal > 0 {
				out--
			}
			outputShape[i] = out
		} else {
			outputShape[i] = floorDiv(in+padTotal-kernel, stride) + 1
		}
	}
	return outputShape
}

// sameTotalPad returns the minimal non-negative total padding such that the
// floor-mode output formula yields ceil(in/stride).
func sameTotalPad(in, kernel, stride int) int {
	return max(0, (ceilDiv(in, stride)-1)*stride+kernel-in)
}

// floorDiv divides rounding towards negative infinity. The numerator may be
// negative (kernel larger than the padded input); the denominator must be
// positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ceilDiv divides rounding towards positive infinity, denominator positive.
func ceilDiv(a, b int) int {
	return floorDiv(a+b-1, b)
}
