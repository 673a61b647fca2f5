package table

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/tuannm99/novatables/internal/record"
)

// Record exports the table as one arrow record, for persistence and transport code
// outside this module. Fixed columns map to primitive arrays, ragged byte columns to
// binary arrays and other ragged columns to lists. The record aliases table memory
// and the caller releases it.
func (t *Table) Record() (arrow.Record, error) {
	if t.released {
		return nil, ErrReleased
	}

	fields := make([]arrow.Field, 0, t.schema.NumCols())
	cols := make([]arrow.Array, 0, t.schema.NumCols())
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	for _, c := range t.schema.Cols {
		var arr arrow.Array
		if c.Kind == record.Ragged {
			arr = t.ragged[c.Name].List()
		} else {
			arr = t.fixed[c.Name].Array()
		}
		cols = append(cols, arr)
		fields = append(fields, arrow.Field{Name: c.Name, Type: arr.DataType()})
	}

	md := arrow.NewMetadata([]string{"table"}, []string{t.schema.Name})
	return array.NewRecord(arrow.NewSchema(fields, &md), cols, int64(t.NumRows())), nil
}
