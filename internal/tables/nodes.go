package tables

import (
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
)

var nodeSchema = record.Schema{
	Name: "nodes",
	Cols: []record.Column{
		record.FixedCol("flags", dtype.Uint32),
		record.FixedCol("time", dtype.Float64),
		record.FixedCol("population", dtype.Int32),
		record.RaggedCol("name", dtype.Uint8, "max_name_length_increment"),
	},
	Params: []record.Param{
		{Name: record.RowsIncrement, Default: common.DefaultIncrement},
		{Name: "max_name_length_increment", Default: common.DefaultIncrement},
	},
}

// NodeTable holds sampled and ancestral nodes of a genealogy. Each node may carry a
// name stored as raw bytes.
type NodeTable struct {
	*table.Table
}

func NewNodeTable(opts ...table.Option) (*NodeTable, error) {
	t, err := table.New(&nodeSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &NodeTable{Table: t}, nil
}

func (t *NodeTable) Flags() []uint32      { return column[uint32](t.Table, "flags") }
func (t *NodeTable) Time() []float64      { return column[float64](t.Table, "time") }
func (t *NodeTable) Population() []int32  { return column[int32](t.Table, "population") }
func (t *NodeTable) NameLength() []uint32 { return column[uint32](t.Table, "name_length") }

// NodeName returns the name bytes of node i.
func (t *NodeTable) NodeName(i int) ([]byte, error) {
	return t.RaggedRow("name", i)
}
