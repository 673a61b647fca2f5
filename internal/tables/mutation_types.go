package tables

import (
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
)

// Mutation types are few and their states short, so every buffer grows one element
// at a time.
var mutationTypeSchema = record.Schema{
	Name: "mutation_types",
	Cols: []record.Column{
		record.RaggedCol("ancestral_state", dtype.Uint8, "max_ancestral_state_length_increment"),
		record.RaggedCol("derived_state", dtype.Uint8, "max_derived_state_length_increment"),
	},
	Params: []record.Param{
		{Name: record.RowsIncrement, Default: common.DefaultLengthIncrement},
		{Name: "max_ancestral_state_length_increment", Default: common.DefaultLengthIncrement},
		{Name: "max_derived_state_length_increment", Default: common.DefaultLengthIncrement},
	},
}

type MutationTypeTable struct {
	*table.Table
}

func NewMutationTypeTable(opts ...table.Option) (*MutationTypeTable, error) {
	t, err := table.New(&mutationTypeSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &MutationTypeTable{Table: t}, nil
}

func (t *MutationTypeTable) AncestralStateLength() []uint32 {
	return column[uint32](t.Table, "ancestral_state_length")
}

func (t *MutationTypeTable) DerivedStateLength() []uint32 {
	return column[uint32](t.Table, "derived_state_length")
}

func (t *MutationTypeTable) AncestralState(i int) ([]byte, error) {
	return t.RaggedRow("ancestral_state", i)
}

func (t *MutationTypeTable) DerivedState(i int) ([]byte, error) {
	return t.RaggedRow("derived_state", i)
}
