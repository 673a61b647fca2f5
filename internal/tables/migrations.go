package tables

import (
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
)

// A migration moves the lineage of node from population source to dest at time, over
// the interval [left, right).
var migrationSchema = record.Schema{
	Name: "migrations",
	Cols: []record.Column{
		record.FixedCol("left", dtype.Float64),
		record.FixedCol("right", dtype.Float64),
		record.FixedCol("node", dtype.Int32),
		record.FixedCol("source", dtype.Int32),
		record.FixedCol("dest", dtype.Int32),
		record.FixedCol("time", dtype.Float64),
	},
	Params: []record.Param{
		{Name: record.RowsIncrement, Default: common.DefaultIncrement},
	},
}

type MigrationTable struct {
	*table.Table
}

func NewMigrationTable(opts ...table.Option) (*MigrationTable, error) {
	t, err := table.New(&migrationSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &MigrationTable{Table: t}, nil
}

func (t *MigrationTable) Left() []float64  { return column[float64](t.Table, "left") }
func (t *MigrationTable) Right() []float64 { return column[float64](t.Table, "right") }
func (t *MigrationTable) Node() []int32    { return column[int32](t.Table, "node") }
func (t *MigrationTable) Source() []int32  { return column[int32](t.Table, "source") }
func (t *MigrationTable) Dest() []int32    { return column[int32](t.Table, "dest") }
func (t *MigrationTable) Time() []float64  { return column[float64](t.Table, "time") }
