package column

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/validate"
)

// StagedRagged is the validated form of one ragged column write.
type StagedRagged struct {
	data    Staged
	lengths Staged
	offsets []int
}

func (s StagedRagged) Rows() int { return s.lengths.rows }

// Ragged stores a variable-length sequence per row as a flat element buffer plus a
// per-row length array. Row i spans [offsets[i], offsets[i+1]) of the data buffer.
// The engine never scans for delimiters.
type Ragged struct {
	name    string
	data    *Fixed
	lengths *Fixed
	offsets []int // len == rows+1
}

// NewRagged builds a ragged column. The length array grows by rowsIncrement and the
// data buffer by dataIncrement.
func NewRagged(name string, elem, lengthType dtype.DType, rowsIncrement, dataIncrement int, mem memory.Allocator) (*Ragged, error) {
	if !lengthType.IsInteger() {
		return nil, fmt.Errorf("column: %q has non-integer length type %s", name, lengthType)
	}
	lengths, err := NewFixed(name+"_length", lengthType, rowsIncrement, mem)
	if err != nil {
		return nil, err
	}
	data, err := NewFixed(name, elem, dataIncrement, mem)
	if err != nil {
		lengths.Release()
		return nil, err
	}
	return &Ragged{
		name:    name,
		data:    data,
		lengths: lengths,
		offsets: []int{0},
	}, nil
}

func (c *Ragged) Name() string { return c.name }
func (c *Ragged) Len() int     { return c.lengths.Len() }

// Data is the flat element buffer.
func (c *Ragged) Data() *Fixed { return c.data }

// Lengths is the per-row length array.
func (c *Ragged) Lengths() *Fixed { return c.lengths }

// Stage validates values against lengths and encodes both without touching the column.
func (c *Ragged) Stage(values, lengths dtype.Array) (StagedRagged, error) {
	lens, err := validate.Lengths(c.lengths.name, lengths)
	if err != nil {
		return StagedRagged{}, err
	}
	data, err := c.data.Stage(values)
	if err != nil {
		return StagedRagged{}, err
	}
	if err := validate.RaggedTotal(c.name, lens, data.rows); err != nil {
		return StagedRagged{}, err
	}
	// narrows to the declared length type; out of range lengths are type errors
	lenStaged, err := c.lengths.Stage(dtype.Slice[int64](lens))
	if err != nil {
		return StagedRagged{}, err
	}

	offsets := make([]int, len(lens)+1)
	for i, l := range lens {
		offsets[i+1] = offsets[i] + int(l)
	}
	return StagedRagged{data: data, lengths: lenStaged, offsets: offsets}, nil
}

func (c *Ragged) Commit(s StagedRagged) {
	c.lengths.Commit(s.lengths)
	c.data.Commit(s.data)
	c.offsets = s.offsets
}

// Set is Stage followed by Commit.
func (c *Ragged) Set(values, lengths dtype.Array) error {
	s, err := c.Stage(values, lengths)
	if err != nil {
		return err
	}
	c.Commit(s)
	return nil
}

// Bounds returns the element range of row i.
func (c *Ragged) Bounds(i int) (start, stop int, err error) {
	if i < 0 || i >= c.Len() {
		return 0, 0, fmt.Errorf("%w: %q row %d of %d", ErrRowOutOfRange, c.name, i, c.Len())
	}
	return c.offsets[i], c.offsets[i+1], nil
}

// Row returns a copy of the encoded elements of row i.
func (c *Ragged) Row(i int) ([]byte, error) {
	start, stop, err := c.Bounds(i)
	if err != nil {
		return nil, err
	}
	size := c.data.dt.Size()
	out := make([]byte, (stop-start)*size)
	copy(out, c.data.Bytes()[start*size:stop*size])
	return out, nil
}

// ListType is the arrow type List exports: binary for byte elements, a list of the
// element type otherwise. Past MaxInt32 elements the large (64-bit offset) variants
// are used.
func (c *Ragged) ListType() arrow.DataType {
	large := c.large()
	switch {
	case c.data.dt == dtype.Uint8 && large:
		return arrow.BinaryTypes.LargeBinary
	case c.data.dt == dtype.Uint8:
		return arrow.BinaryTypes.Binary
	case large:
		return arrow.LargeListOf(c.data.dt.Arrow())
	default:
		return arrow.ListOf(c.data.dt.Arrow())
	}
}

// List returns a read-only arrow view with one entry per row. The caller releases it.
func (c *Ragged) List() arrow.Array {
	offsets := memory.NewBufferBytes(offsetBytes(c.offsets, c.large()))
	values := memory.NewBufferBytes(c.data.Bytes())

	var data *array.Data
	if c.data.dt == dtype.Uint8 {
		data = array.NewData(c.ListType(), c.Len(), []*memory.Buffer{nil, offsets, values}, nil, 0, 0)
	} else {
		child := array.NewData(c.data.dt.Arrow(), c.data.Len(), []*memory.Buffer{nil, values}, nil, 0, 0)
		defer child.Release()
		data = array.NewData(c.ListType(), c.Len(), []*memory.Buffer{nil, offsets}, []arrow.ArrayData{child}, 0, 0)
	}
	defer data.Release()
	return array.MakeFromData(data)
}

func (c *Ragged) large() bool {
	return c.offsets[len(c.offsets)-1] > math.MaxInt32
}

// offsetBytes encodes offsets as int64 when large is set, int32 otherwise.
func offsetBytes(offsets []int, large bool) []byte {
	if large {
		out := make([]int64, len(offsets))
		for i, o := range offsets {
			out[i] = int64(o)
		}
		return arrow.Int64Traits.CastToBytes(out)
	}
	out := make([]int32, len(offsets))
	for i, o := range offsets {
		out[i] = int32(o)
	}
	return arrow.Int32Traits.CastToBytes(out)
}

func (c *Ragged) Clear() {
	c.lengths.Clear()
	c.data.Clear()
	c.offsets = c.offsets[:1]
}

func (c *Ragged) Release() {
	c.lengths.Release()
	c.data.Release()
	c.offsets = c.offsets[:1]
}
