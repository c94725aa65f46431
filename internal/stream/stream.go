// Package stream provides the byte-stream layer the serialization code
// reads and writes through: binary or text mode, token I/O, one-byte
// lookahead and byte-offset queries for error reporting.
package stream

import (
	"bufio"
	"fmt"
	"io"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Reader wraps an io.Reader with lookahead and offset tracking.
type Reader struct {
	br     *bufio.Reader
	pos    int64
	binary bool
}

// NewReader creates a Reader in the given mode.
func NewReader(r io.Reader, binary bool) *Reader {
	return &Reader{br: bufio.NewReader(r), binary: binary}
}

// Binary reports whether the stream is in binary mode.
func (r *Reader) Binary() bool {
	return r.binary
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, error) {
	b, err := r.br.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadByte consumes and returns one byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err == nil {
		r.pos++
	}
	return b, err
}

// ReadFull fills p completely or fails. A short read surfaces as
// io.ErrUnexpectedEOF.
func (r *Reader) ReadFull(p []byte) error {
	n, err := io.ReadFull(r.br, p)
	r.pos += int64(n)
	return err
}

// ReadToken skips leading whitespace and reads the next run of
// non-whitespace bytes. EOF before any token byte is an error.
func (r *Reader) ReadToken() (string, error) {
	for {
		b, err := r.Peek()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
		if _, err := r.ReadByte(); err != nil {
			return "", err
		}
	}

	var tok []byte
	for {
		b, err := r.Peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			break
		}
		if _, err := r.ReadByte(); err != nil {
			return "", err
		}
		tok = append(tok, b)
	}
	if len(tok) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	return string(tok), nil
}

// Writer wraps an io.Writer with offset tracking.
type Writer struct {
	w      io.Writer
	pos    int64
	binary bool
}

// NewWriter creates a Writer in the given mode.
func NewWriter(w io.Writer, binary bool) *Writer {
	return &Writer{w: w, binary: binary}
}

// Binary reports whether the stream is in binary mode.
func (w *Writer) Binary() bool {
	return w.binary
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 {
	return w.pos
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err == nil && n < len(p) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(p))
	}
	return n, err
}

// WriteString writes s verbatim.
func (w *Writer) WriteString(s string) error {
	_, err := w.Write([]byte(s))
	return err
}
