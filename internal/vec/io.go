package vec

import (
	"encoding/binary"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/murmel-speech/murmel/internal/stream"
)

// Binary headers. A float32 vector is tagged "FV", a float64 vector "DV";
// the tag is followed by an int32 element count and the raw elements in
// native byte order.
func tag[T Real]() string {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return "FV"
	}
	return "DV"
}

func bitSize[T Real]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

func rawBytes[T Real](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var dummy T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(dummy)))
}

// Write serializes the vector to w in the writer's mode.
func (v View[T]) Write(w *stream.Writer) error {
	if !w.Binary() {
		return v.writeText(w)
	}

	if err := w.WriteString(tag[T]()); err != nil {
		return err
	}
	var hdr [4]byte
	binary.NativeEndian.PutUint32(hdr[:], uint32(int32(v.n)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	data, inc := v.data, v.step()
	if inc == 1 {
		_, err := w.Write(rawBytes(data[:v.n]))
		return err
	}
	tmp := make([]T, v.n)
	for i := range tmp {
		tmp[i] = data[i*inc]
	}
	_, err := w.Write(rawBytes(tmp))
	return err
}

func (v View[T]) writeText(w *stream.Writer) error {
	var sb strings.Builder
	sb.WriteString(" [ ")
	data, inc := v.data, v.step()
	for i := 0; i < v.n; i++ {
		sb.WriteString(strconv.FormatFloat(float64(data[i*inc]), 'g', -1, bitSize[T]()))
		sb.WriteByte(' ')
	}
	sb.WriteString("]\n")
	return w.WriteString(sb.String())
}

// Read deserializes from r in the reader's mode, resizing the vector to
// the stored length. In binary mode a vector of the other precision is
// accepted and converted. With add set, the stored vector is added to
// the current contents instead; the dimensions must then match, except
// that an empty vector takes the stored dimension.
func (v *Vector[T]) Read(r *stream.Reader, add bool) error {
	if add {
		tmp := &Vector[T]{}
		if err := tmp.Read(r, false); err != nil {
			return err
		}
		if v.n == 0 {
			if err := v.Resize(tmp.n, ZeroFill); err != nil {
				return err
			}
		}
		return v.AddVec(1, tmp.View)
	}

	if !r.Binary() {
		return v.readText(r)
	}

	start := r.Pos()
	first, err := r.Peek()
	if err != nil {
		return parseErr(start, r.Pos(), "reading header: %v", err)
	}
	if first == tag[T]()[0] {
		return v.readBinary(r)
	}

	// Other-precision header: read it fully, then convert.
	switch dst := any(v).(type) {
	case *Vector[float32]:
		var other Vector[float64]
		if err := other.readBinary(r); err != nil {
			return err
		}
		if err := dst.Resize(other.n, Undefined); err != nil {
			return err
		}
		return CastVec(dst.View, other.View)
	case *Vector[float64]:
		var other Vector[float32]
		if err := other.readBinary(r); err != nil {
			return err
		}
		if err := dst.Resize(other.n, Undefined); err != nil {
			return err
		}
		return CastVec(dst.View, other.View)
	}
	return parseErr(start, r.Pos(), "unexpected header byte %q", first)
}

func (v *Vector[T]) readBinary(r *stream.Reader) error {
	start := r.Pos()

	var hdr [2]byte
	if err := r.ReadFull(hdr[:]); err != nil {
		return parseErr(start, r.Pos(), "reading header: %v", err)
	}
	if got := string(hdr[:]); got != tag[T]() {
		return parseErr(start, r.Pos(), "expected token %q, got %q", tag[T](), got)
	}

	var raw [4]byte
	if err := r.ReadFull(raw[:]); err != nil {
		return parseErr(start, r.Pos(), "reading vector size: %v", err)
	}
	n := int(int32(binary.NativeEndian.Uint32(raw[:])))
	if n < 0 {
		return parseErr(start, r.Pos(), "negative vector size %d", n)
	}
	if err := v.Resize(n, Undefined); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if err := r.ReadFull(rawBytes(v.data[:n])); err != nil {
		return parseErr(start, r.Pos(), "reading vector data: %v", err)
	}
	return nil
}

func (v *Vector[T]) readText(r *stream.Reader) error {
	start := r.Pos()

	tok, err := r.ReadToken()
	if err != nil {
		return parseErr(start, r.Pos(), "reading opening bracket: %v", err)
	}
	if tok == "[]" {
		// Explicit empty vector.
		return v.Resize(0, Undefined)
	}
	if tok != "[" {
		return parseErr(start, r.Pos(), "expected \"[\", got %q", tok)
	}

	var elems []T
	for {
		b, err := r.Peek()
		if err != nil {
			return parseErr(start, r.Pos(), "unexpected end of stream: %v", err)
		}
		switch {
		case b == ']':
			if _, err := r.ReadByte(); err != nil {
				return parseErr(start, r.Pos(), "reading closing bracket: %v", err)
			}
			if v.n != len(elems) {
				if err := v.Resize(len(elems), Undefined); err != nil {
					return err
				}
			}
			copy(v.data, elems)
			return nil
		case b == '\n':
			return parseErr(start, r.Pos(), "newline found while reading vector")
		case b == ' ' || b == '\t' || b == '\r':
			if _, err := r.ReadByte(); err != nil {
				return parseErr(start, r.Pos(), "skipping whitespace: %v", err)
			}
		default:
			tok, err := readElemToken(r)
			if err != nil {
				return parseErr(start, r.Pos(), "reading element %d: %v", len(elems), err)
			}
			f, err := strconv.ParseFloat(tok, bitSize[T]())
			if err != nil {
				return parseErr(start, r.Pos(), "parsing element %d from %q", len(elems), tok)
			}
			if math.IsInf(f, 0) || math.IsNaN(f) {
				slog.Warn("non-finite value in vector text stream",
					"index", len(elems), "token", tok)
			}
			elems = append(elems, T(f))
		}
	}
}

// readElemToken reads a number token, stopping before whitespace or a
// closing bracket.
func readElemToken(r *stream.Reader) (string, error) {
	var tok []byte
	for {
		b, err := r.Peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isElemDelim(b) {
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

func isElemDelim(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ']'
}

// Read deserializes into a fixed-dimension view. The stored vector's
// dimension must equal the view's, or the stored dimension is added
// elementwise when add is set.
func (v View[T]) Read(r *stream.Reader, add bool) error {
	tmp := &Vector[T]{}
	if err := tmp.Read(r, false); err != nil {
		return err
	}
	if err := v.checkDim(tmp.n); err != nil {
		return err
	}
	if add {
		return v.AddVec(1, tmp.View)
	}
	return v.CopyFromVec(tmp.View)
}
