// Copyright 2026 Murmel Speech Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/murmel-speech/murmel/internal/blas"
)

// Backend identifies a numeric kernel implementation.
type Backend = blas.Backend

// Backend constants.
const (
	// Reference is the portable pure-Go kernel set.
	Reference Backend = blas.Reference
	// Gonum is the accelerated kernel set and the default.
	Gonum Backend = blas.Gonum
)

// Use selects the kernel backend for all subsequent operations. It is
// meant for configuration at startup and in tests; it is not safe to
// call concurrently with running operations.
func Use(b Backend) {
	blas.Use(b)
}

// Active returns the currently selected backend.
func Active() Backend {
	return blas.Active()
}
