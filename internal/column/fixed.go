package column

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/dustin/go-humanize"

	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/validate"
)

var ErrRowOutOfRange = errors.New("column: row out of range")

// Staged is a validated, encoded column value that has not been committed yet.
type Staged struct {
	data []byte
	rows int
}

func (s Staged) Rows() int { return s.rows }

// Fixed is a growable buffer holding one element of a fixed-width dtype per row.
// Only the first Len() elements are valid; the rest is spare capacity.
type Fixed struct {
	name      string
	dt        dtype.DType
	increment int
	capacity  int
	rows      int
	buf       *memory.Buffer
}

// NewFixed allocates a column with room for one increment of elements. A nil
// allocator means memory.DefaultAllocator.
func NewFixed(name string, dt dtype.DType, increment int, mem memory.Allocator) (*Fixed, error) {
	if _, err := validate.Increment(fmt.Sprintf("increment of %q", name), increment); err != nil {
		return nil, err
	}
	if dt.Size() == 0 {
		return nil, fmt.Errorf("column: %q has unsupported dtype %s", name, dt)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	c := &Fixed{
		name:      name,
		dt:        dt,
		increment: increment,
		buf:       memory.NewResizableBuffer(mem),
	}
	c.reserve(increment)
	return c, nil
}

func (c *Fixed) Name() string       { return c.name }
func (c *Fixed) DType() dtype.DType { return c.dt }
func (c *Fixed) Increment() int     { return c.increment }
func (c *Fixed) Capacity() int      { return c.capacity }
func (c *Fixed) Len() int           { return c.rows }

// Stage validates and encodes values without touching the column.
func (c *Fixed) Stage(values dtype.Array) (Staged, error) {
	b, err := dtype.Encode(c.name, c.dt, values)
	if err != nil {
		return Staged{}, err
	}
	return Staged{data: b, rows: len(b) / c.dt.Size()}, nil
}

// Commit replaces the column contents with s, which must come from Stage on this
// column. Commit cannot fail.
func (c *Fixed) Commit(s Staged) {
	c.reserve(s.rows)
	c.buf.ResizeNoShrink(len(s.data))
	copy(c.buf.Bytes(), s.data)
	c.rows = s.rows
}

// Set is Stage followed by Commit.
func (c *Fixed) Set(values dtype.Array) error {
	s, err := c.Stage(values)
	if err != nil {
		return err
	}
	c.Commit(s)
	return nil
}

// Bytes returns the encoded valid elements. The slice aliases the column buffer and
// is only good until the next Commit, Clear or Release.
func (c *Fixed) Bytes() []byte {
	if c.buf == nil {
		return nil
	}
	return c.buf.Bytes()[:c.rows*c.dt.Size()]
}

// Array returns a read-only arrow view of the valid elements. Like Bytes, it must be
// re-fetched after the column changes. The caller releases it.
func (c *Fixed) Array() arrow.Array {
	data := array.NewData(c.dt.Arrow(), c.rows,
		[]*memory.Buffer{nil, memory.NewBufferBytes(c.Bytes())}, nil, 0, 0)
	defer data.Release()
	return array.MakeFromData(data)
}

// Clear drops all rows and keeps the capacity.
func (c *Fixed) Clear() {
	c.rows = 0
	if c.buf != nil {
		c.buf.ResizeNoShrink(0)
	}
}

// Release returns the buffer to its allocator. The column is unusable afterwards.
func (c *Fixed) Release() {
	if c.buf != nil {
		c.buf.Release()
		c.buf = nil
	}
	c.rows = 0
	c.capacity = 0
}

func (c *Fixed) reserve(n int) {
	if n <= c.capacity {
		return
	}
	c.capacity = capacityFor(n, c.increment)
	size := c.capacity * c.dt.Size()
	c.buf.Reserve(size)

	slog.Debug("column: grow",
		"column", c.name,
		"capacity", c.capacity,
		"size", humanize.Bytes(uint64(size)),
	)
}
