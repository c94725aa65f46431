package vec

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure in this package wraps one of these sentinels,
// so callers can classify with errors.Is. All failures are synchronous and
// local; nothing is retried internally.
var (
	// ErrDimensionMismatch indicates operand lengths disagree. Never
	// silently truncated.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDomain indicates an argument outside an operation's domain,
	// such as the logarithm of a negative number.
	ErrDomain = errors.New("domain error")

	// ErrOverflow indicates a power or logarithm produced a non-finite
	// result. The wrapped message carries the offending index and value.
	ErrOverflow = errors.New("numeric overflow")

	// ErrMalformedStream indicates unparseable serialized data. The
	// wrapped message carries the stream's starting and current byte
	// offsets.
	ErrMalformedStream = errors.New("malformed stream")

	// ErrEmptyVector indicates an operation that is undefined on a
	// zero-length vector, such as Max with index.
	ErrEmptyVector = errors.New("empty vector")

	// ErrAliasedOperands indicates the receiver and an operand share
	// storage where the operation forbids overlap.
	ErrAliasedOperands = errors.New("aliased operands")

	// ErrInvalidStride indicates a view stride below one.
	ErrInvalidStride = errors.New("invalid stride")

	// ErrInvalidLength indicates a negative requested length or an
	// index outside the vector.
	ErrInvalidLength = errors.New("invalid length")
)

func dimErr(want, got int) error {
	return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, want, got)
}

func domainErr(op string, index int, value float64) error {
	return fmt.Errorf("%w: %s at index %d: value %v", ErrDomain, op, index, value)
}

func overflowErr(op string, index int, value float64) error {
	return fmt.Errorf("%w: %s at index %d: value %v", ErrOverflow, op, index, value)
}

func lengthErr(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLength, n)
}

func indexErr(i, n int) error {
	return fmt.Errorf("%w: index %d out of range for dimension %d", ErrInvalidLength, i, n)
}

func parseErr(start, current int64, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s (stream position at start %d, currently %d)", ErrMalformedStream, detail, start, current)
}
