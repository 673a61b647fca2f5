// Package table is the generic columnar engine. A Table is a fixed set of fixed and
// ragged columns described by a record.Schema, replaced in bulk by SetColumns.
//
// Tables are not safe for concurrent use; callers serialize access.
package table

import (
	"errors"
	"fmt"
	"slices"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/dustin/go-humanize"

	"github.com/tuannm99/novatables/internal/column"
	"github.com/tuannm99/novatables/internal/common"
	locking "github.com/tuannm99/novatables/internal/lock"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/validate"
)

var ErrReleased = errors.New("table: already released")

// Columns maps input names to arrays. Values are dtype.Array implementations or Go
// slices.
type Columns map[string]any

type settings struct {
	increments map[string]any
	mem        memory.Allocator
}

type Option func(*settings)

// WithIncrement overrides one growth-increment parameter. The value is validated by
// New, so config values of any type can be passed through.
func WithIncrement(param string, v any) Option {
	return func(s *settings) {
		s.increments[param] = v
	}
}

func WithIncrements(m map[string]any) Option {
	return func(s *settings) {
		for k, v := range m {
			s.increments[k] = v
		}
	}
}

// WithAllocator sets the allocator for every column buffer.
func WithAllocator(mem memory.Allocator) Option {
	return func(s *settings) {
		s.mem = mem
	}
}

type Table struct {
	schema     *record.Schema
	increments map[string]int

	fixed  map[string]*column.Fixed
	ragged map[string]*column.Ragged

	refs     *locking.RefCount
	released bool
}

// New builds an empty table. Increment parameters not given in opts take the schema
// defaults; unknown parameters and non-positive or non-integer values fail with
// ErrInvalidArgument.
func New(schema *record.Schema, opts ...Option) (*Table, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	st := settings{increments: make(map[string]any)}
	for _, opt := range opts {
		opt(&st)
	}

	increments := make(map[string]int, len(schema.Params))
	for _, p := range schema.Params {
		increments[p.Name] = p.Default
	}
	names := make([]string, 0, len(st.increments))
	for name := range st.increments {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, ok := schema.Param(name); !ok {
			return nil, common.ErrInvalidArgument.New(name, "not an increment parameter of "+schema.Name)
		}
		n, err := validate.Increment(name, st.increments[name])
		if err != nil {
			return nil, err
		}
		increments[name] = n
	}

	t := &Table{
		schema:     schema,
		increments: increments,
		fixed:      make(map[string]*column.Fixed),
		ragged:     make(map[string]*column.Ragged),
		refs:       locking.NewRefCount(),
	}
	if err := t.build(st.mem); err != nil {
		t.releaseColumns()
		return nil, err
	}
	return t, nil
}

func (t *Table) build(mem memory.Allocator) error {
	rows := t.increments[record.RowsIncrement]
	for _, c := range t.schema.Cols {
		switch c.Kind {
		case record.Fixed:
			col, err := column.NewFixed(c.Name, c.Type, rows, mem)
			if err != nil {
				return err
			}
			t.fixed[c.Name] = col
		case record.Ragged:
			col, err := column.NewRagged(c.Name, c.Type, c.LengthType, rows, t.increments[c.Increment], mem)
			if err != nil {
				return err
			}
			t.ragged[c.Name] = col
		default:
			return fmt.Errorf("%w: column %q has kind %s", record.ErrBadSchema, c.Name, c.Kind)
		}
	}
	return nil
}

func (t *Table) Name() string { return t.schema.Name }

func (t *Table) Schema() *record.Schema { return t.schema }

// NumRows is the row count shared by every column. It is read from the columns
// rather than stored separately.
func (t *Table) NumRows() int {
	c := t.schema.Cols[0]
	if c.Kind == record.Ragged {
		return t.ragged[c.Name].Len()
	}
	return t.fixed[c.Name].Len()
}

// Increment returns the value of one growth-increment parameter.
func (t *Table) Increment(param string) (int, error) {
	n, ok := t.increments[param]
	if !ok {
		return 0, common.ErrUnknownField.New(param)
	}
	return n, nil
}

// Increments returns a copy of all growth-increment parameters.
func (t *Table) Increments() map[string]int {
	out := make(map[string]int, len(t.increments))
	for k, v := range t.increments {
		out[k] = v
	}
	return out
}

// Column returns a read-only view of an input name: a fixed column, a ragged
// column's flat data, or a ragged column's lengths. The view aliases table memory:
// release it and fetch a new one after SetColumns or Clear.
func (t *Table) Column(name string) (arrow.Array, error) {
	buf, err := t.buffer(name)
	if err != nil {
		return nil, err
	}
	return buf.Array(), nil
}

// List returns a ragged column as an arrow array with one entry per row.
func (t *Table) List(name string) (arrow.Array, error) {
	if t.released {
		return nil, ErrReleased
	}
	col, ok := t.ragged[name]
	if !ok {
		return nil, common.ErrUnknownField.New(name)
	}
	return col.List(), nil
}

// RaggedRow returns a copy of the encoded elements of row i of a ragged column.
func (t *Table) RaggedRow(name string, i int) ([]byte, error) {
	if t.released {
		return nil, ErrReleased
	}
	col, ok := t.ragged[name]
	if !ok {
		return nil, common.ErrUnknownField.New(name)
	}
	return col.Row(i)
}

// Clear empties the table and keeps the buffer capacity.
func (t *Table) Clear() {
	for _, c := range t.fixed {
		c.Clear()
	}
	for _, c := range t.ragged {
		c.Clear()
	}
}

func (t *Table) Retain() {
	t.refs.Retain()
}

// Release drops a reference; the last one returns every buffer to the allocator.
func (t *Table) Release() {
	if t.refs.Release() {
		t.releaseColumns()
		t.released = true
	}
}

func (t *Table) releaseColumns() {
	for _, c := range t.fixed {
		c.Release()
	}
	for _, c := range t.ragged {
		c.Release()
	}
}

func (t *Table) String() string {
	var reserved int
	for _, name := range t.schema.InputNames() {
		if buf, err := t.buffer(name); err == nil {
			reserved += buf.Capacity() * buf.DType().Size()
		}
	}
	return fmt.Sprintf("%s: %d rows, %d columns, %s reserved",
		t.schema.Name, t.NumRows(), t.schema.NumCols(), humanize.Bytes(uint64(reserved)))
}

// buffer resolves an input name to the fixed-width buffer holding it.
func (t *Table) buffer(name string) (*column.Fixed, error) {
	if t.released {
		return nil, ErrReleased
	}
	c, isLength, ok := t.schema.Lookup(name)
	if !ok {
		return nil, common.ErrUnknownField.New(name)
	}
	if c.Kind == record.Fixed {
		return t.fixed[c.Name], nil
	}
	if isLength {
		return t.ragged[c.Name].Lengths(), nil
	}
	return t.ragged[c.Name].Data(), nil
}
