package tables

import (
	"github.com/tuannm99/novatables/internal"
	"github.com/tuannm99/novatables/internal/table"
)

// Collection owns one table of each kind, the unit a simulation writes into.
type Collection struct {
	Nodes         *NodeTable
	Edgesets      *EdgesetTable
	MutationTypes *MutationTypeTable
	Mutations     *MutationsTable
	Migrations    *MigrationTable
}

// NewCollection builds every table. opts apply to all of them; per-table increments
// from cfg are applied after opts and win. cfg may be nil.
func NewCollection(cfg *internal.TablesConfig, opts ...table.Option) (*Collection, error) {
	with := func(name string) []table.Option {
		out := append([]table.Option{}, opts...)
		return append(out, OptionsFor(cfg, name)...)
	}

	c := &Collection{}
	var err error
	if c.Nodes, err = NewNodeTable(with(nodeSchema.Name)...); err != nil {
		return nil, err
	}
	if c.Edgesets, err = NewEdgesetTable(with(edgesetSchema.Name)...); err != nil {
		c.Release()
		return nil, err
	}
	if c.MutationTypes, err = NewMutationTypeTable(with(mutationTypeSchema.Name)...); err != nil {
		c.Release()
		return nil, err
	}
	if c.Mutations, err = NewMutationsTable(with(mutationsSchema.Name)...); err != nil {
		c.Release()
		return nil, err
	}
	if c.Migrations, err = NewMigrationTable(with(migrationSchema.Name)...); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Tables returns the tables that have been built, in schema order.
func (c *Collection) Tables() []*table.Table {
	var out []*table.Table
	if c.Nodes != nil {
		out = append(out, c.Nodes.Table)
	}
	if c.Edgesets != nil {
		out = append(out, c.Edgesets.Table)
	}
	if c.MutationTypes != nil {
		out = append(out, c.MutationTypes.Table)
	}
	if c.Mutations != nil {
		out = append(out, c.Mutations.Table)
	}
	if c.Migrations != nil {
		out = append(out, c.Migrations.Table)
	}
	return out
}

func (c *Collection) Clear() {
	for _, t := range c.Tables() {
		t.Clear()
	}
}

func (c *Collection) Release() {
	for _, t := range c.Tables() {
		t.Release()
	}
}
