// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package ops

//go:generate go tool enumer -type=PadType -trimprefix=PadType -transform=snake -text

// PadType is the policy determining how much, and how, padding is added
// around the spatial dimensions before windowing.
//
// In MIL programs the policy travels as a compile-time constant string
// ("valid", "same", "custom", "same_lower"); parsing is case-insensitive.
type PadType int

const (
	// PadTypeValid adds no padding. Equivalent to custom padding with all
	// zeros.
	PadTypeValid PadType = iota

	// PadTypeSame pads so that, under unit strides, the output spatial
	// dimensions equal the input ones. An odd total padding places the extra
	// element after (trailing side of) the dimension.
	PadTypeSame

	// PadTypeCustom uses the caller-supplied per-dimension pad amounts.
	PadTypeCustom

	// PadTypeSameLower is like PadTypeSame, but an odd total padding places
	// the extra element before (leading side of) the dimension.
	// Not supported on the earliest pooling target.
	PadTypeSameLower
)
