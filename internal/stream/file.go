package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// multiCloser closes an inner stream before the file that backs it.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens path for reading, transparently decompressing when the name
// ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // G304: paths come from the caller by design
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
	}
	return &multiCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

// Create opens path for writing, transparently compressing when the name
// ends in .gz.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path) //nolint:gosec // G304: paths come from the caller by design
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz := gzip.NewWriter(f)
	return &multiCloser{Writer: gz, closers: []io.Closer{gz, f}}, nil
}
