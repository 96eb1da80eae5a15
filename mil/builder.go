// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package mil

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/webfutureiorepo/apple-coremltools/types/shapes"
)

// Builder constructs a MIL function and acts as the generic type-checking
// caller for its operations: each Apply runs the operation's TypeInference
// against the builder's compilation target and caches the resulting output
// type on the new value.
//
// The first error encountered is recorded and returned by Err; later calls
// become no-ops so call sites can stay unchecked until the end, as in:
//
//	b := mil.NewBuilder("main")
//	x := b.Input("x", dtypes.Float32, 1, 3, 32, 32)
//	y := b.Apply(ops.MaxPool([]int{2, 2}, "valid").Strides(2, 2), x)
//	b.Output(y)
//	if err := b.Err(); err != nil { ... }
type Builder struct {
	name   string
	target Target

	values     map[string]*Value
	operations []*AppliedOp
	outputs    []*Value
	nextID     int

	err error
}

// AppliedOp records one operation added to the function, with its already
// inferred output value.
type AppliedOp struct {
	OpType string
	Input  *Value
	Output *Value
}

// NewBuilder creates a Builder for a MIL function with the given name,
// compiling for DefaultTarget. Use Target to change it before adding
// operations.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		target: DefaultTarget,
		values: make(map[string]*Value),
	}
}

// Target sets the compilation target the function is built for.
// It returns the modified Builder, so calls can be cascaded.
func (b *Builder) Target(target Target) *Builder {
	b.target = target
	return b
}

// Name returns the function name.
func (b *Builder) Name() string { return b.name }

// Err returns the first error encountered while building, or nil.
func (b *Builder) Err() error { return b.err }

// setErr records the first error encountered.
func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// genName generates a unique name for intermediate values.
func (b *Builder) genName(prefix string) string {
	name := fmt.Sprintf("%s_%d", prefix, b.nextID)
	b.nextID++
	return name
}

// invalid returns a placeholder value handed out after an error, so chained
// call sites don't have to nil-check.
func (b *Builder) invalid(name string) *Value {
	return &Value{name: name, shape: shapes.Invalid()}
}

// Input adds a named input tensor to the function. Dimensions may use
// shapes.SymbolicDim for axes unknown at conversion time (typically batch).
func (b *Builder) Input(name string, dtype dtypes.DType, dimensions ...int) *Value {
	if b.err != nil {
		return b.invalid(name)
	}
	if _, found := b.values[name]; found {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "duplicate value name %q", name))
		return b.invalid(name)
	}
	v := &Value{name: name, shape: shapes.Make(dtype, dimensions...)}
	b.values[name] = v
	return v
}

// Const adds an immediate compile-time constant with the given flat data and
// dimensions. data must be one of []float32, []float16.Float16 (see
// Float16Values), []int32 or []bool, and its length must match the product of
// the dimensions, which must all be concrete.
func (b *Builder) Const(name string, data any, dimensions ...int) *Value {
	if b.err != nil {
		return b.invalid(name)
	}
	dtype, numElements := constDType(data)
	if dtype == dtypes.InvalidDType {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "const %q: unsupported data type %T", name, data))
		return b.invalid(name)
	}
	shape := shapes.Make(dtype, dimensions...)
	if !shape.FullyDefined() {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "const %q: dimensions must be concrete, got %s", name, shape))
		return b.invalid(name)
	}
	if shape.Size() != numElements {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "const %q: %d elements given for shape %s (wants %d)",
			name, numElements, shape, shape.Size()))
		return b.invalid(name)
	}
	if _, found := b.values[name]; found {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "duplicate value name %q", name))
		return b.invalid(name)
	}
	v := &Value{name: name, shape: shape, constData: data}
	b.values[name] = v
	return v
}

// Apply adds an operation consuming x, runs its type inference against the
// builder's target and returns the new output value with its inferred type.
func (b *Builder) Apply(op Operation, x *Value) *Value {
	name := b.genName(op.OpType())
	if b.err != nil {
		return b.invalid(name)
	}
	minTarget, registered := OpAvailability(op.OpType())
	if !registered {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "op %q is not registered", op.OpType()))
		return b.invalid(name)
	}
	if !b.target.AtLeast(minTarget) {
		b.setErr(errors.Wrapf(ErrInvalidParameter, "op %q requires target >= %s, building for %s",
			op.OpType(), minTarget, b.target))
		return b.invalid(name)
	}
	outputShape, err := op.TypeInference(x.shape, b.target)
	if err != nil {
		b.setErr(errors.WithMessagef(err, "op %q applied to %s", op.OpType(), x.shape))
		return b.invalid(name)
	}
	klog.V(2).Infof("mil.Builder %q: %s(%s) -> %s", b.name, op.OpType(), x.shape, outputShape)

	out := &Value{name: name, shape: outputShape}
	b.values[name] = out
	b.operations = append(b.operations, &AppliedOp{OpType: op.OpType(), Input: x, Output: out})
	return out
}

// Output marks a value as an output of the function.
func (b *Builder) Output(v *Value) {
	if b.err != nil {
		return
	}
	b.outputs = append(b.outputs, v)
}

// Outputs returns the values marked as function outputs.
func (b *Builder) Outputs() []*Value { return b.outputs }

// Operations returns the operations added so far, in order.
func (b *Builder) Operations() []*AppliedOp { return b.operations }
