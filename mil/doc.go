// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package mil holds the building blocks of a MIL (Machine Learning
// Intermediate Language) program surface: SSA values and compile-time
// constants, the compilation Target (opset version) marker, the Operation
// interface with its registry, and a program Builder that runs type/shape
// inference as operations are added.
//
// Operator definitions themselves live in the sub-package ops and register
// with this package at init time.
//
// Errors: every parameter-validation failure wraps ErrInvalidParameter, so
// callers can categorize with errors.Is. Internally the packages use the
// panic-based flow from github.com/gomlx/exceptions; panics never escape the
// exported API, they are converted back to errors at the boundary.
package mil
