package dtype

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/tuannm99/novatables/internal/alias/bx"
	"github.com/tuannm99/novatables/internal/common"
)

var errNested = errors.New("nested sequence where a scalar was expected")

// number is a scalar normalized to one of three representations.
type number struct {
	kind Kind // KindSigned, KindUnsigned or KindFloat
	i    int64
	u    uint64
	f    float64
}

// CheckShape reports whether a can be used as one column's worth of input.
func CheckShape(col string, a Array) error {
	if a == nil {
		return common.ErrTypeMismatch.New(col, "no array given")
	}
	if a.Kind() == KindInvalid {
		return common.ErrTypeMismatch.New(col, fmt.Sprintf("cannot interpret %s as an array", describe(a)))
	}
	if a.Dims() != 1 {
		return common.ErrShapeMismatch.New(col, fmt.Sprintf("expected a one-dimensional array, got %d dimensions", a.Dims()))
	}
	if !a.Contiguous() {
		return common.ErrShapeMismatch.New(col, "array is not contiguous")
	}
	return nil
}

// Encode coerces every element of a to dt and returns the little-endian encoding.
// Lossy conversions (fractions into integer columns, out of range values, text that
// does not parse as a number) are rejected with ErrTypeMismatch. int8 elements
// written to a Uint8 column keep their bit pattern, so signed chars round-trip as bytes.
func Encode(col string, dt DType, a Array) ([]byte, error) {
	if err := CheckShape(col, a); err != nil {
		return nil, err
	}

	size := dt.Size()
	out := make([]byte, a.Len()*size)
	for i := 0; i < a.Len(); i++ {
		// signed chars are stored bit for bit in byte columns
		if c, ok := a.At(i).(int8); ok && dt == Uint8 {
			out[i] = byte(c)
			continue
		}
		n, err := normalize(a.At(i))
		if err == nil {
			err = put(out[i*size:], dt, n)
		}
		if err != nil {
			return nil, elementError(col, i, err)
		}
	}
	return out, nil
}

// Ints coerces a to int64 values. Used for ragged length arrays, whose checks need
// signed values before the result is narrowed to the length dtype.
func Ints(col string, a Array) ([]int64, error) {
	if err := CheckShape(col, a); err != nil {
		return nil, err
	}

	out := make([]int64, a.Len())
	for i := range out {
		n, err := normalize(a.At(i))
		if err == nil {
			var bits uint64
			bits, err = fit(Int64, n)
			out[i] = int64(bits)
		}
		if err != nil {
			return nil, elementError(col, i, err)
		}
	}
	return out, nil
}

func elementError(col string, i int, err error) error {
	if errors.Is(err, errNested) {
		return common.ErrShapeMismatch.New(col, fmt.Sprintf("element %d: %v", i, err))
	}
	return common.ErrTypeMismatch.New(col, fmt.Sprintf("element %d: %v", i, err))
}

func normalize(v any) (number, error) {
	switch x := v.(type) {
	case int8:
		return number{kind: KindSigned, i: int64(x)}, nil
	case int16:
		return number{kind: KindSigned, i: int64(x)}, nil
	case int32:
		return number{kind: KindSigned, i: int64(x)}, nil
	case int64:
		return number{kind: KindSigned, i: x}, nil
	case int:
		return number{kind: KindSigned, i: int64(x)}, nil
	case uint8:
		return number{kind: KindUnsigned, u: uint64(x)}, nil
	case uint16:
		return number{kind: KindUnsigned, u: uint64(x)}, nil
	case uint32:
		return number{kind: KindUnsigned, u: uint64(x)}, nil
	case uint64:
		return number{kind: KindUnsigned, u: x}, nil
	case uint:
		return number{kind: KindUnsigned, u: uint64(x)}, nil
	case float32:
		return number{kind: KindFloat, f: float64(x)}, nil
	case float64:
		return number{kind: KindFloat, f: x}, nil
	case string:
		return parse(x)
	case bool:
		return number{}, fmt.Errorf("boolean %v is not a number", x)
	case nil:
		return number{}, errors.New("nil element")
	}

	// named numeric types, such as typed IDs
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: KindSigned, i: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number{kind: KindUnsigned, u: rv.Uint()}, nil
	case reflect.Float32, reflect.Float64:
		return number{kind: KindFloat, f: rv.Float()}, nil
	case reflect.Slice, reflect.Array:
		return number{}, errNested
	}
	return number{}, fmt.Errorf("unsupported element type %T", v)
}

func parse(s string) (number, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{kind: KindSigned, i: i}, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return number{kind: KindUnsigned, u: u}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return number{kind: KindFloat, f: f}, nil
	}
	return number{}, fmt.Errorf("cannot parse %q as a number", s)
}

// fit converts n to dt and returns the raw bits to store.
func fit(dt DType, n number) (uint64, error) {
	if dt == Float64 {
		switch n.kind {
		case KindSigned:
			f := float64(n.i)
			if f >= math.MaxInt64 || int64(f) != n.i {
				return 0, fmt.Errorf("value %d cannot be represented exactly as %s", n.i, dt)
			}
			return math.Float64bits(f), nil
		case KindUnsigned:
			f := float64(n.u)
			if f >= math.MaxUint64 || uint64(f) != n.u {
				return 0, fmt.Errorf("value %d cannot be represented exactly as %s", n.u, dt)
			}
			return math.Float64bits(f), nil
		default:
			return math.Float64bits(n.f), nil
		}
	}
	if !dt.IsInteger() {
		return 0, fmt.Errorf("unsupported column type %s", dt)
	}

	if n.kind == KindFloat {
		f := n.f
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("value %v is not an integer", f)
		}
		switch {
		case f < 0 && f >= math.MinInt64:
			n = number{kind: KindSigned, i: int64(f)}
		case f >= 0 && f < math.MaxUint64:
			n = number{kind: KindUnsigned, u: uint64(f)}
		default:
			return 0, fmt.Errorf("value %v out of range for %s", f, dt)
		}
	}

	lo, hi := dt.intRange()
	switch n.kind {
	case KindSigned:
		if n.i < lo || (n.i > 0 && uint64(n.i) > hi) {
			return 0, fmt.Errorf("value %d out of range for %s", n.i, dt)
		}
		return uint64(n.i), nil
	default:
		if n.u > hi {
			return 0, fmt.Errorf("value %d out of range for %s", n.u, dt)
		}
		return n.u, nil
	}
}

func put(b []byte, dt DType, n number) error {
	bits, err := fit(dt, n)
	if err != nil {
		return err
	}
	switch dt.Size() {
	case 1:
		b[0] = byte(bits)
	case 4:
		bx.PutU32(b, uint32(bits))
	case 8:
		bx.PutU64(b, bits)
	}
	return nil
}

func describe(a Array) string {
	if s, ok := a.(scalar); ok {
		return fmt.Sprintf("value of type %T", s.v)
	}
	return fmt.Sprintf("%T", a)
}
