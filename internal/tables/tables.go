// Package tables binds the generic engine to the genealogy schemas: nodes, edge-sets,
// mutation types, mutations and migrations. The variants differ only in columns.
package tables

import (
	"github.com/tuannm99/novatables/internal"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
)

// Schemas returns every descriptor declared in this package.
func Schemas() []*record.Schema {
	return []*record.Schema{
		&nodeSchema,
		&edgesetSchema,
		&mutationTypeSchema,
		&mutationsSchema,
		&migrationSchema,
	}
}

// OptionsFor turns the config overrides for one table into table options.
func OptionsFor(cfg *internal.TablesConfig, name string) []table.Option {
	incs := cfg.Increments(name)
	if len(incs) == 0 {
		return nil
	}
	return []table.Option{table.WithIncrements(incs)}
}

// column copies a declared column out of t. The schema guarantees name and type, so
// a failure here is a programming error.
func column[T dtype.Native](t *table.Table, name string) []T {
	v, err := table.Values[T](t, name)
	if err != nil {
		panic(err)
	}
	return v
}

// row decodes row i of a declared ragged column.
func row[T dtype.Native](t *table.Table, name string, i int) ([]T, error) {
	b, err := t.RaggedRow(name, i)
	if err != nil {
		return nil, err
	}
	return dtype.Decode[T](b), nil
}
