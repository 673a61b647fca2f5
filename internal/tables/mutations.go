package tables

import (
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
)

// A mutation occurs at position above nodes; type is a row of the mutation type table.
var mutationsSchema = record.Schema{
	Name: "mutations",
	Cols: []record.Column{
		record.FixedCol("position", dtype.Float64),
		record.FixedCol("nodes", dtype.Int32),
		record.FixedCol("type", dtype.Uint8),
	},
	Params: []record.Param{
		{Name: record.RowsIncrement, Default: common.DefaultIncrement},
	},
}

type MutationsTable struct {
	*table.Table
}

func NewMutationsTable(opts ...table.Option) (*MutationsTable, error) {
	t, err := table.New(&mutationsSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &MutationsTable{Table: t}, nil
}

func (t *MutationsTable) Position() []float64 { return column[float64](t.Table, "position") }
func (t *MutationsTable) Nodes() []int32      { return column[int32](t.Table, "nodes") }
func (t *MutationsTable) Type() []uint8       { return column[uint8](t.Table, "type") }
