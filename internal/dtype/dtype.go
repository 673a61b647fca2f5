// Package dtype declares the element types a column can store and the array contract
// producers hand to the table engine.
package dtype

import (
	"math"

	"github.com/apache/arrow/go/v17/arrow"
)

// DType is the element type of a column buffer.
type DType uint8

const (
	Invalid DType = iota
	Int8
	Uint8
	Int32
	Uint32
	Int64
	Float64
)

// Arrow returns the arrow type with the same memory layout as d.
func (d DType) Arrow() arrow.DataType {
	switch d {
	case Int8:
		return arrow.PrimitiveTypes.Int8
	case Uint8:
		return arrow.PrimitiveTypes.Uint8
	case Int32:
		return arrow.PrimitiveTypes.Int32
	case Uint32:
		return arrow.PrimitiveTypes.Uint32
	case Int64:
		return arrow.PrimitiveTypes.Int64
	case Float64:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.Null
	}
}

// Size is the width of one element in bytes, 0 for Invalid.
func (d DType) Size() int {
	if d == Invalid {
		return 0
	}
	fw, ok := d.Arrow().(arrow.FixedWidthDataType)
	if !ok {
		return 0
	}
	return fw.BitWidth() / 8
}

func (d DType) String() string {
	if d == Invalid {
		return "invalid"
	}
	return d.Arrow().Name()
}

func (d DType) IsInteger() bool {
	return d != Invalid && d != Float64
}

// intRange is the inclusive range of an integer dtype. The upper bound is unsigned so
// that it can hold MaxInt64 and the unsigned maxima alike.
func (d DType) intRange() (lo int64, hi uint64) {
	switch d {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Uint8:
		return 0, math.MaxUint8
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Uint32:
		return 0, math.MaxUint32
	case Int64:
		return math.MinInt64, math.MaxInt64
	}
	return 0, 0
}

// Native is the set of Go types a column can be decoded into.
type Native interface {
	int8 | uint8 | int32 | uint32 | int64 | float64
}

// Of returns the DType backing the Go type T.
func Of[T Native]() DType {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case float64:
		return Float64
	}
	return Invalid
}
