// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package mil

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/x448/float16"

	"github.com/webfutureiorepo/apple-coremltools/types/shapes"
)

// Value represents a named value in a MIL program: a program input, an
// operation output, or an immediate compile-time constant.
//
// Values are immutable once created; shape inference never writes back into
// them.
type Value struct {
	name      string
	shape     shapes.Shape
	constData any
}

// Name returns the value's name inside the program.
func (v *Value) Name() string { return v.name }

// Shape returns the value's tensor type. It implements shapes.HasShape.
func (v *Value) Shape() shapes.Shape { return v.shape }

// DType returns the value's element type.
func (v *Value) DType() dtypes.DType { return v.shape.DType }

// IsConst returns whether this value is an immediate compile-time constant.
func (v *Value) IsConst() bool { return v.constData != nil }

// ConstData returns the flat constant data, or nil for non-const values.
// The concrete type is one of []float32, []float16.Float16, []int32 or []bool.
func (v *Value) ConstData() any { return v.constData }

// Float16Values converts float32 values to their fp16 representation, for
// building Float16 immediate constants.
func Float16Values(values ...float32) []float16.Float16 {
	converted := make([]float16.Float16, len(values))
	for ii, value := range values {
		converted[ii] = float16.Fromfloat32(value)
	}
	return converted
}

// constDType maps the flat data slice to its element type.
// Returns InvalidDType for unsupported data types.
func constDType(data any) (dtypes.DType, int) {
	switch d := data.(type) {
	case []float32:
		return dtypes.Float32, len(d)
	case []float16.Float16:
		return dtypes.Float16, len(d)
	case []int32:
		return dtypes.Int32, len(d)
	case []bool:
		return dtypes.Bool, len(d)
	}
	return dtypes.InvalidDType, 0
}
