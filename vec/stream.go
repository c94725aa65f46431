// Copyright 2026 Murmel Speech Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vec

import (
	"io"

	"github.com/murmel-speech/murmel/internal/stream"
)

// Reader is the byte stream vectors are deserialized from.
type Reader = stream.Reader

// Writer is the byte stream vectors are serialized to.
type Writer = stream.Writer

// NewReader wraps r as a vector stream in binary or text mode.
func NewReader(r io.Reader, binary bool) *Reader {
	return stream.NewReader(r, binary)
}

// NewWriter wraps w as a vector stream in binary or text mode.
func NewWriter(w io.Writer, binary bool) *Writer {
	return stream.NewWriter(w, binary)
}

// Open opens a file for reading, decompressing transparently when the
// path ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	return stream.Open(path)
}

// Create creates a file for writing, compressing transparently when the
// path ends in ".gz".
func Create(path string) (io.WriteCloser, error) {
	return stream.Create(path)
}
