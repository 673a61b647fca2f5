package dtype

import "reflect"

// Kind classifies the elements an Array carries before any coercion.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSigned
	KindUnsigned
	KindFloat
	KindString
	KindBool
	// KindObject arrays are heterogeneous and are checked element by element.
	KindObject
)

// Array is the read contract for column input. Producers either implement it or pass
// plain Go slices, which Wrap adapts.
type Array interface {
	// Len is the element count along the first axis.
	Len() int
	// Dims is the number of axes; column input must have exactly one.
	Dims() int
	// Contiguous reports whether elements are laid out without gaps.
	Contiguous() bool
	Kind() Kind
	At(i int) any
}

// Element is the set of Go element types Slice accepts.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		int | uint | float32 | float64 | string | bool
}

// Slice adapts a typed Go slice to Array without copying.
type Slice[T Element] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (Slice[T]) Dims() int {
	return 1
}

func (Slice[T]) Contiguous() bool {
	return true
}

func (s Slice[T]) At(i int) any {
	return s[i]
}

func (Slice[T]) Kind() Kind {
	var z T
	return kindOf(any(z))
}

// Objects is a heterogeneous array, such as decoded JSON or YAML lists.
type Objects []any

func (o Objects) Len() int {
	return len(o)
}

func (Objects) Dims() int {
	return 1
}

func (Objects) Contiguous() bool {
	return true
}

func (Objects) Kind() Kind {
	return KindObject
}

func (o Objects) At(i int) any {
	return o[i]
}

// reflected covers slice and array types not listed in Wrap, including nested ones.
type reflected struct {
	v reflect.Value
}

func (r reflected) Len() int {
	return r.v.Len()
}

func (r reflected) Contiguous() bool {
	return true
}

func (r reflected) At(i int) any {
	return r.v.Index(i).Interface()
}

func (r reflected) Dims() int {
	dims := 0
	for t := r.v.Type(); t.Kind() == reflect.Slice || t.Kind() == reflect.Array; t = t.Elem() {
		dims++
	}
	return dims
}

func (r reflected) Kind() Kind {
	t := r.v.Type().Elem()
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUnsigned
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Interface:
		return KindObject
	}
	return KindInvalid
}

// scalar is anything that is not a sequence. It reports zero dimensions.
type scalar struct {
	v any
}

func (s scalar) Len() int {
	return 1
}

func (scalar) Dims() int {
	return 0
}

func (scalar) Contiguous() bool {
	return true
}

func (s scalar) Kind() Kind {
	return kindOf(s.v)
}

func (s scalar) At(int) any {
	return s.v
}

// Wrap adapts v to Array. It never fails: values that cannot serve as a column are
// reported as type or shape mismatches when encoded.
func Wrap(v any) Array {
	switch x := v.(type) {
	case Array:
		return x
	case []int8:
		return Slice[int8](x)
	case []uint8:
		return Slice[uint8](x)
	case []int16:
		return Slice[int16](x)
	case []uint16:
		return Slice[uint16](x)
	case []int32:
		return Slice[int32](x)
	case []uint32:
		return Slice[uint32](x)
	case []int64:
		return Slice[int64](x)
	case []uint64:
		return Slice[uint64](x)
	case []int:
		return Slice[int](x)
	case []uint:
		return Slice[uint](x)
	case []float32:
		return Slice[float32](x)
	case []float64:
		return Slice[float64](x)
	case []string:
		return Slice[string](x)
	case []bool:
		return Slice[bool](x)
	case []any:
		return Objects(x)
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		return reflected{v: rv}
	}
	return scalar{v: v}
}

func kindOf(v any) Kind {
	switch v.(type) {
	case int8, int16, int32, int64, int:
		return KindSigned
	case uint8, uint16, uint32, uint64, uint:
		return KindUnsigned
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case bool:
		return KindBool
	}
	return KindInvalid
}
