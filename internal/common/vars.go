package common

import (
	"gopkg.in/src-d/go-errors.v1"
)

const (
	// DefaultIncrement is the growth step for row and ragged-data buffers unless a
	// schema declares otherwise.
	DefaultIncrement = 1024

	// DefaultLengthIncrement is used by tables whose rows are rare and short, where
	// over-allocating a full page of elements per buffer is wasteful.
	DefaultLengthIncrement = 1
)

// Error kinds returned by the table engine. Errors are never wrapped, so callers match
// them with Kind.Is(err).
var (
	// ErrInvalidArgument is returned for a non-positive or non-integer growth increment.
	ErrInvalidArgument = errors.NewKind("invalid argument %s: %s")

	// ErrTypeMismatch is returned when a column value cannot be coerced to the
	// column dtype without loss.
	ErrTypeMismatch = errors.NewKind("type mismatch in column %q: %s")

	// ErrShapeMismatch covers wrong dimensionality, disagreeing row counts and
	// ragged length/data size mismatches.
	ErrShapeMismatch = errors.NewKind("shape mismatch in column %q: %s")

	// ErrMissingColumn is returned when SetColumns omits a required column.
	ErrMissingColumn = errors.NewKind("missing column %q")

	// ErrImmutableField is returned on any attempt to assign num_rows, an increment
	// or a column view directly.
	ErrImmutableField = errors.NewKind("field %q is read-only")

	// ErrUnknownField is returned for names the schema does not declare.
	ErrUnknownField = errors.NewKind("unknown field %q")
)
