// Package validate holds the pure checks run before any table buffer is touched.
// Nothing here mutates its input.
package validate

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
)

// Count is the row count one column reports during a SetColumns call.
type Count struct {
	Column string
	Rows   int
}

// Increment checks a growth increment. Integers of any width, integral floats (as
// decoded from JSON) and decimal strings (as read from env or flags) are accepted if
// strictly positive.
func Increment(param string, v any) (int, error) {
	var n int64
	switch x := v.(type) {
	case float32, float64:
		f := reflect.ValueOf(x).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%v is not an integer", x))
		}
		if f < 1 {
			return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%v must be positive", x))
		}
		if f > math.MaxInt32 {
			return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%v is too large", x))
		}
		n = int64(f)
	case bool, nil:
		return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%v is not an integer", x))
	case string:
		// decimal only; cast would read "010" as octal
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%q is not a decimal integer", x))
		}
		n = i
	default:
		var err error
		n, err = cast.ToInt64E(x)
		if err != nil {
			return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%v is not an integer", x))
		}
	}
	if n <= 0 {
		return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%d must be positive", n))
	}
	if n > math.MaxInt32 {
		return 0, common.ErrInvalidArgument.New(param, fmt.Sprintf("%d is too large", n))
	}
	return int(n), nil
}

// Coverage checks that got names every required column and nothing else. Missing
// columns are reported in required order.
func Coverage(required []string, got map[string]any) error {
	known := make(map[string]struct{}, len(required))
	for _, name := range required {
		if _, ok := got[name]; !ok {
			return common.ErrMissingColumn.New(name)
		}
		known[name] = struct{}{}
	}
	for name := range got {
		if _, ok := known[name]; !ok {
			return common.ErrUnknownField.New(name)
		}
	}
	return nil
}

// RowCounts checks that every column reports the same number of rows and returns it.
// An empty list means a table without row columns and yields zero.
func RowCounts(counts []Count) (int, error) {
	if len(counts) == 0 {
		return 0, nil
	}
	want := counts[0]
	for _, c := range counts[1:] {
		if c.Rows != want.Rows {
			return 0, common.ErrShapeMismatch.New(c.Column,
				fmt.Sprintf("has %d rows, %q has %d", c.Rows, want.Column, want.Rows))
		}
	}
	return want.Rows, nil
}

// Lengths coerces a ragged length array and rejects negative entries.
func Lengths(col string, a dtype.Array) ([]int64, error) {
	lengths, err := dtype.Ints(col, a)
	if err != nil {
		return nil, err
	}
	for i, l := range lengths {
		if l < 0 {
			return nil, common.ErrShapeMismatch.New(col, fmt.Sprintf("negative length %d at row %d", l, i))
		}
	}
	return lengths, nil
}

// RaggedTotal checks the packed-encoding invariant sum(lengths) == len(data).
func RaggedTotal(col string, lengths []int64, dataLen int) error {
	var total int64
	for _, l := range lengths {
		// lengths are non-negative; stop once the sum passes dataLen so it cannot wrap
		if l > int64(dataLen)-total {
			return common.ErrShapeMismatch.New(col,
				fmt.Sprintf("ragged length/data size mismatch: lengths sum to more than %d, data has %d elements", dataLen, dataLen))
		}
		total += l
	}
	if total != int64(dataLen) {
		return common.ErrShapeMismatch.New(col,
			fmt.Sprintf("ragged length/data size mismatch: lengths sum to %d, data has %d elements", total, dataLen))
	}
	return nil
}
