// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the tensor-type descriptor used by the MIL
// (Machine Learning Intermediate Language) packages.
//
// A Shape combines an element type (DType, from github.com/gomlx/gopjrt/dtypes)
// with an ordered list of dimensions. Unlike a plain array shape, a MIL tensor
// type may carry symbolic (unknown at conversion time) dimensions -- typically
// the batch and channel axes of an input. Symbolic dimensions are represented
// by the SymbolicDim sentinel.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a tensor.
//   - Axis: the index of a dimension. We refer to the dimension index as
//     "axis" (plural axes), and to its size as its dimension.
//   - DType: the data type of the unit element of a tensor.
//   - Symbolic dimension: an axis whose size is not known at conversion time.
package shapes

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// DType is an alias for the element type enum used throughout.
type DType = dtypes.DType

// SymbolicDim marks an axis whose dimension is unknown at conversion time.
// MIL programs commonly leave the batch (and sometimes channel) axes symbolic.
//
// It is deliberately not -1: windowed-reduction shape inference can produce
// degenerate (zero or negative) extents that must remain distinguishable from
// symbolic axes.
const SymbolicDim = math.MinInt

// Shape represents the type of a tensor value: element type plus dimensions.
//
// Use Make to create a new shape. Dimensions must be non-negative or
// SymbolicDim; zero-sized axes are allowed (degenerate tensors).
type Shape struct {
	DType      DType
	Dimensions []int
}

// Make returns a Shape with the given element type and dimensions.
// It panics if a dimension is negative and not SymbolicDim.
func Make(dtype DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 && dim != SymbolicDim {
			exceptions.Panicf("shapes.Make(%s): dimensions must be >= 0 or SymbolicDim, got %v", dtype, dimensions)
		}
	}
	return s
}

// Scalar returns a rank-0 Shape for the given type.
func Scalar[T dtypes.Number]() Shape {
	return Shape{DType: dtypes.FromGenericsType[T]()}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape { return Shape{DType: dtypes.InvalidDType} }

// Ok returns whether this is a valid Shape. The zero value Shape{} is invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has rank 0.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. A negative axis counts from
// the end, so Dim(-1) is the last axis. It panics for an out-of-bounds axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// IsSymbolicDim returns whether the dimension at the given axis is symbolic.
// Like Dim, axis may be negative to count from the end.
func (s Shape) IsSymbolicDim(axis int) bool { return s.Dim(axis) == SymbolicDim }

// FullyDefined returns whether no axis is symbolic.
func (s Shape) FullyDefined() bool {
	return !slices.Contains(s.Dimensions, SymbolicDim)
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// HasShape is satisfied by anything shaped: tensor types, IR values, Shape itself.
type HasShape interface {
	Shape() Shape
}

// String implements fmt.Stringer. Symbolic dimensions print as "?".
func (s Shape) String() string {
	if !s.Ok() {
		return "(invalid shape)"
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	parts := make([]string, 0, s.Rank())
	for _, dim := range s.Dimensions {
		if dim == SymbolicDim {
			parts = append(parts, "?")
		} else {
			parts = append(parts, fmt.Sprintf("%d", dim))
		}
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(parts, " "))
}

// Size returns the number of elements, the product of all dimensions.
// It returns SymbolicDim if any dimension is symbolic.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		if d == SymbolicDim {
			return SymbolicDim
		}
		size *= d
	}
	return
}

// Equal compares dtype and dimensions. Symbolic dimensions only compare equal
// to symbolic dimensions.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// EqualDimensions compares dimensions only; dtypes may differ.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Dimensions = slices.Clone(s.Dimensions)
	return
}
