package tables

import (
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
)

// An edge-set records that parent is the ancestor of children over the genomic
// interval [left, right).
var edgesetSchema = record.Schema{
	Name: "edgesets",
	Cols: []record.Column{
		record.FixedCol("left", dtype.Float64),
		record.FixedCol("right", dtype.Float64),
		record.FixedCol("parent", dtype.Int32),
		record.RaggedCol("children", dtype.Int32, "max_children_length_increment"),
	},
	Params: []record.Param{
		{Name: record.RowsIncrement, Default: common.DefaultIncrement},
		{Name: "max_children_length_increment", Default: common.DefaultIncrement},
	},
}

type EdgesetTable struct {
	*table.Table
}

func NewEdgesetTable(opts ...table.Option) (*EdgesetTable, error) {
	t, err := table.New(&edgesetSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &EdgesetTable{Table: t}, nil
}

func (t *EdgesetTable) Left() []float64  { return column[float64](t.Table, "left") }
func (t *EdgesetTable) Right() []float64 { return column[float64](t.Table, "right") }
func (t *EdgesetTable) Parent() []int32  { return column[int32](t.Table, "parent") }

func (t *EdgesetTable) ChildrenLength() []uint32 {
	return column[uint32](t.Table, "children_length")
}

// Children returns the child node IDs of edge-set i.
func (t *EdgesetTable) Children(i int) ([]int32, error) {
	return row[int32](t.Table, "children", i)
}
