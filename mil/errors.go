// Copyright 2026 The CoreMLTools-Go Authors. SPDX-License-Identifier: Apache-2.0

package mil

import (
	"github.com/pkg/errors"
)

// ErrInvalidParameter is the single error kind raised by parameter and shape
// validation. Every validation failure wraps it with a message identifying
// the failed check and the offending value(s); test with errors.Is.
//
// Validation failures are detected at inference time and are not recoverable
// for the node: the caller must treat them as a hard failure of program
// construction.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterf panics with an error wrapping ErrInvalidParameter.
//
// It is used inside validation code, where the panic-based flow keeps the
// cascade readable; exported entry points convert the panic back to a
// returned error with exceptions.TryCatch.
func InvalidParameterf(format string, args ...any) {
	panic(errors.Wrapf(ErrInvalidParameter, format, args...))
}
