// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package mil

import (
	"strings"

	"github.com/pkg/errors"
)

// Target is the ordered compilation-target (opset version) marker. Operator
// availability and some parameter combinations are gated on it: an operator
// registered for a given Target is available on that target and any later one.
//
// It is always threaded explicitly -- there is no ambient global target.
type Target int

const (
	// TargetNone means no target was selected.
	TargetNone Target = iota
	TargetIOS13
	TargetIOS14
	TargetIOS15
	TargetIOS16
	TargetIOS17
	TargetIOS18
)

// DefaultTarget is used by NewBuilder when no target is configured.
const DefaultTarget = TargetIOS18

var targetNames = map[Target]string{
	TargetNone:  "none",
	TargetIOS13: "ios13",
	TargetIOS14: "ios14",
	TargetIOS15: "ios15",
	TargetIOS16: "ios16",
	TargetIOS17: "ios17",
	TargetIOS18: "ios18",
}

// String implements fmt.Stringer.
func (t Target) String() string {
	if name, found := targetNames[t]; found {
		return name
	}
	return "invalid_target"
}

// AtLeast returns whether t is the given target or a later one.
func (t Target) AtLeast(other Target) bool { return t >= other }

// TargetFromString parses a target name like "ios15" (case-insensitive).
func TargetFromString(name string) (Target, error) {
	wanted := strings.ToLower(name)
	for target, targetName := range targetNames {
		if targetName == wanted && target != TargetNone {
			return target, nil
		}
	}
	return TargetNone, errors.Wrapf(ErrInvalidParameter, "unknown compilation target %q", name)
}
