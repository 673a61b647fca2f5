package dtype

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novatables/internal/common"
)

func TestDType_Layout(t *testing.T) {
	cases := []struct {
		dt   DType
		size int
		name string
	}{
		{Int8, 1, "int8"},
		{Uint8, 1, "uint8"},
		{Int32, 4, "int32"},
		{Uint32, 4, "uint32"},
		{Int64, 8, "int64"},
		{Float64, 8, "float64"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.size, tc.dt.Size(), tc.name)
		require.Equal(t, tc.name, tc.dt.String())
	}
	require.Equal(t, 0, Invalid.Size())
	require.Equal(t, "invalid", Invalid.String())
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Run("int32 from int32", func(t *testing.T) {
		in := []int32{0, -1, math.MaxInt32, math.MinInt32}
		b, err := Encode("c", Int32, Wrap(in))
		require.NoError(t, err)
		require.Equal(t, in, Decode[int32](b))
	})

	t.Run("uint32 from int", func(t *testing.T) {
		b, err := Encode("c", Uint32, Wrap([]int{0, 1, 2, math.MaxUint32}))
		require.NoError(t, err)
		require.Equal(t, []uint32{0, 1, 2, math.MaxUint32}, Decode[uint32](b))
	})

	t.Run("float64 from ints and floats", func(t *testing.T) {
		b, err := Encode("c", Float64, Wrap([]any{1, uint8(2), 2.5, "3.25"}))
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 2.5, 3.25}, Decode[float64](b))
	})

	t.Run("int8 into uint8 column", func(t *testing.T) {
		b, err := Encode("c", Uint8, Wrap([]int8{0, 0, 127}))
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 127}, b)
	})

	t.Run("signed chars into uint8 column keep their bits", func(t *testing.T) {
		b, err := Encode("c", Uint8, Wrap([]int8{'c', 'a', 'f', -61, -87}))
		require.NoError(t, err)
		require.Equal(t, []byte("caf\xc3\xa9"), b)
	})

	t.Run("named element types", func(t *testing.T) {
		type nodeID int32
		type weight float32
		type flag uint16

		b, err := Encode("c", Int32, Wrap([]nodeID{3, -1}))
		require.NoError(t, err)
		require.Equal(t, []int32{3, -1}, Decode[int32](b))

		b, err = Encode("c", Float64, Wrap([]weight{0.5}))
		require.NoError(t, err)
		require.Equal(t, []float64{0.5}, Decode[float64](b))

		b, err = Encode("c", Uint32, Wrap([]any{flag(9)}))
		require.NoError(t, err)
		require.Equal(t, []uint32{9}, Decode[uint32](b))
	})

	t.Run("large integers exact in float64", func(t *testing.T) {
		b, err := Encode("c", Float64, Wrap([]int64{1 << 53, -(1 << 53)}))
		require.NoError(t, err)
		require.Equal(t, []float64{1 << 53, -(1 << 53)}, Decode[float64](b))
	})

	t.Run("integral floats into int column", func(t *testing.T) {
		b, err := Encode("c", Int32, Wrap([]float64{0, 1, -7}))
		require.NoError(t, err)
		require.Equal(t, []int32{0, 1, -7}, Decode[int32](b))
	})

	t.Run("numeric strings", func(t *testing.T) {
		b, err := Encode("c", Int64, Wrap([]string{"12", " -3 ", "18"}))
		require.NoError(t, err)
		require.Equal(t, []int64{12, -3, 18}, Decode[int64](b))
	})

	t.Run("empty", func(t *testing.T) {
		b, err := Encode("c", Float64, Wrap([]float64{}))
		require.NoError(t, err)
		require.Empty(t, b)
		require.Empty(t, Decode[float64](b))
	})
}

type namedBool bool

func TestEncode_TypeMismatch(t *testing.T) {
	cases := map[string]struct {
		dt DType
		v  any
	}{
		"fractional into int32":    {Int32, []float64{1.5}},
		"NaN into int32":           {Int32, []float64{math.NaN()}},
		"negative into uint32":     {Uint32, []int32{-1}},
		"overflow uint8":           {Uint8, []int{256}},
		"overflow int32":           {Int32, []int64{math.MaxInt32 + 1}},
		"text into int32":          {Int32, []string{"qwer"}},
		"mixed objects":            {Int32, []any{0, "sd"}},
		"booleans":                 {Float64, []bool{true}},
		"nil element":              {Float64, []any{nil}},
		"error value":              {Int32, errors.New("not an array")},
		"nil":                      {Int32, nil},
		"struct slice":             {Int32, []struct{}{{}}},
		"huge unsigned into int64": {Int64, []uint64{math.MaxUint64}},
		"inexact int64 in float64": {Float64, []int64{1<<53 + 1}},
		"max int64 in float64":     {Float64, []int64{math.MaxInt64}},
		"inexact uint64 float64":   {Float64, []uint64{1<<63 + 1}},
		"named bool elements":      {Int32, []namedBool{true}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Encode("col", tc.dt, Wrap(tc.v))
			require.Error(t, err)
			require.True(t, common.ErrTypeMismatch.Is(err), "got %v", err)
		})
	}
}

func TestEncode_ShapeMismatch(t *testing.T) {
	cases := map[string]any{
		"two dimensional":   [][]int32{{1, 2}, {3, 4}},
		"fixed size matrix": [2][2]float64{},
		"bare string":       "qwer",
		"bare number":       3,
		"nested object":     []any{1, []int{2}},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Encode("col", Int32, Wrap(v))
			require.Error(t, err)
			require.True(t, common.ErrShapeMismatch.Is(err), "got %v", err)
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("len", Wrap([]uint32{3, 3, 5}))
	require.NoError(t, err)
	require.Equal(t, []int64{3, 3, 5}, got)

	got, err = Ints("len", Wrap([]int{-1, 2}))
	require.NoError(t, err)
	require.Equal(t, []int64{-1, 2}, got)

	_, err = Ints("len", Wrap([]float64{0.5}))
	require.True(t, common.ErrTypeMismatch.Is(err))
}

func TestWrap_Kinds(t *testing.T) {
	require.Equal(t, KindSigned, Wrap([]int32{1}).Kind())
	require.Equal(t, KindUnsigned, Wrap([]byte("ab")).Kind())
	require.Equal(t, KindFloat, Wrap([]float32{1}).Kind())
	require.Equal(t, KindObject, Wrap([]any{1}).Kind())
	require.Equal(t, KindSigned, Wrap([]int16{1}).Kind())

	type myInts []int32
	w := Wrap(myInts{4, 5})
	require.Equal(t, 1, w.Dims())
	require.Equal(t, KindSigned, w.Kind())
	require.Equal(t, int32(5), w.At(1))

	arr := Slice[uint32]{1, 2}
	require.Equal(t, Array(arr), Wrap(arr))
}
