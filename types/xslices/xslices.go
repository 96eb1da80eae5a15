// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provides slice helpers missing from the standard slices
// package, used mostly for building per-axis parameter lists.
package xslices

import (
	"golang.org/x/exp/constraints"
)

// At takes an element at the given `index`, where `index` can be negative,
// in which case it takes from the end of the slice.
func At[T any](slice []T, index int) T {
	if index < 0 {
		index = len(slice) + index
	}
	return slice[index]
}

// Last returns the last element of a slice.
func Last[T any](slice []T) T {
	return At(slice, -1)
}

// SliceWithValue creates a slice of the given size filled with the given value.
func SliceWithValue[T any](size int, value T) []T {
	s := make([]T, size)
	for ii := range s {
		s[ii] = value
	}
	return s
}

// Iota returns a slice of incremental int values, starting with start and
// of the given size. E.g.: Iota(3, 2) -> []int{3, 4}.
func Iota[T constraints.Integer](start T, size int) (slice []T) {
	slice = make([]T, size)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}
