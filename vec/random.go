// Copyright 2026 Murmel Speech Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/murmel-speech/murmel/internal/randsrc"
)

// RandSource supplies the draws consumed by SetRandn, SetRandUniform and
// RandCategorical.
type RandSource = randsrc.Source

// NewRandSource returns a seeded pseudo-random source. Equal seeds give
// equal draw sequences.
func NewRandSource(seed int64) RandSource {
	return randsrc.New(seed)
}
