package table

import (
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
)

// FieldNumRows is the field name of the row count in Get and SetField.
const FieldNumRows = "num_rows"

// Get reads a field by name: num_rows, an increment parameter, or a column view.
// Column views must be released by the caller.
func (t *Table) Get(field string) (any, error) {
	if field == FieldNumRows {
		return t.NumRows(), nil
	}
	if n, ok := t.increments[field]; ok {
		return n, nil
	}
	if _, _, ok := t.schema.Lookup(field); ok {
		return t.Column(field)
	}
	return nil, common.ErrUnknownField.New(field)
}

// SetField is the assignment counterpart of Get for callers that address fields by
// name. Every field is read-only: increments are fixed by New and data only changes
// through SetColumns. It never modifies the table.
func (t *Table) SetField(field string, _ any) error {
	if t.hasField(field) {
		return common.ErrImmutableField.New(field)
	}
	return common.ErrUnknownField.New(field)
}

func (t *Table) hasField(field string) bool {
	if field == FieldNumRows {
		return true
	}
	if _, ok := t.increments[field]; ok {
		return true
	}
	_, _, ok := t.schema.Lookup(field)
	return ok
}

// Values copies an input column out as a typed slice. T must match the column dtype.
func Values[T dtype.Native](t *Table, name string) ([]T, error) {
	buf, err := t.buffer(name)
	if err != nil {
		return nil, err
	}
	if want := dtype.Of[T](); want != buf.DType() {
		return nil, common.ErrTypeMismatch.New(name, "column holds "+buf.DType().String()+", not "+want.String())
	}
	return dtype.Decode[T](buf.Bytes()), nil
}
