// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package mil

import (
	"slices"

	"k8s.io/klog/v2"

	"github.com/webfutureiorepo/apple-coremltools/types/shapes"
)

// Operation is implemented by MIL operators that can type-check themselves:
// given the type of their (already bound) input tensor and the ambient
// compilation target, they either produce the fully-specified output tensor
// type or an error wrapping ErrInvalidParameter.
//
// Implementations are pure: they mutate neither the input shape nor their own
// bound parameters, so they are safe to run concurrently on independent nodes.
type Operation interface {
	// OpType returns the MIL operator name, e.g. "max_pool".
	OpType() string

	// TypeInference computes the output tensor type for input x.
	TypeInference(x shapes.Shape, target Target) (shapes.Shape, error)
}

// opMinTargets maps registered operator names to the earliest Target that
// supports them. Registration happens exclusively at init time (from the ops
// sub-package), so the map is read-only afterwards and needs no locking.
var opMinTargets = make(map[string]Target)

// RegisterOp registers a MIL operator name and the earliest compilation
// target that supports it. Meant to be called from init functions of the
// packages defining operators. Re-registration overwrites and logs a warning.
func RegisterOp(opType string, minTarget Target) {
	if previous, found := opMinTargets[opType]; found {
		klog.Warningf("MIL op %q re-registered: minimum target %s overwrites %s", opType, minTarget, previous)
	}
	opMinTargets[opType] = minTarget
	klog.V(1).Infof("registered MIL op %q (available since %s)", opType, minTarget)
}

// OpAvailability returns the earliest target supporting the given operator
// name, and whether the operator is registered at all.
func OpAvailability(opType string) (Target, bool) {
	minTarget, found := opMinTargets[opType]
	return minTarget, found
}

// RegisteredOps returns the sorted names of all registered operators.
func RegisteredOps() []string {
	names := make([]string, 0, len(opMinTargets))
	for name := range opMinTargets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
