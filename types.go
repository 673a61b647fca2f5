// Package novatables is the top-level facade for the columnar table engine and the
// genealogy tables built on it.
package novatables

import (
	"github.com/tuannm99/novatables/internal"
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/table"
	"github.com/tuannm99/novatables/internal/tables"
)

type (
	Table   = table.Table
	Columns = table.Columns
	Option  = table.Option
	Schema  = record.Schema

	Array = dtype.Array
	DType = dtype.DType

	NodeTable         = tables.NodeTable
	EdgesetTable      = tables.EdgesetTable
	MutationTypeTable = tables.MutationTypeTable
	MutationsTable    = tables.MutationsTable
	MigrationTable    = tables.MigrationTable
	Collection        = tables.Collection

	Config = internal.TablesConfig
)

const (
	Int8    = dtype.Int8
	Uint8   = dtype.Uint8
	Int32   = dtype.Int32
	Uint32  = dtype.Uint32
	Int64   = dtype.Int64
	Float64 = dtype.Float64
)

var (
	NewTable             = table.New
	NewNodeTable         = tables.NewNodeTable
	NewEdgesetTable      = tables.NewEdgesetTable
	NewMutationTypeTable = tables.NewMutationTypeTable
	NewMutationsTable    = tables.NewMutationsTable
	NewMigrationTable    = tables.NewMigrationTable
	NewCollection        = tables.NewCollection
	Schemas              = tables.Schemas

	WithIncrement  = table.WithIncrement
	WithIncrements = table.WithIncrements
	WithAllocator  = table.WithAllocator

	Wrap       = dtype.Wrap
	LoadConfig = internal.LoadConfig
)

var (
	ErrInvalidArgument = common.ErrInvalidArgument
	ErrTypeMismatch    = common.ErrTypeMismatch
	ErrShapeMismatch   = common.ErrShapeMismatch
	ErrMissingColumn   = common.ErrMissingColumn
	ErrImmutableField  = common.ErrImmutableField
	ErrUnknownField    = common.ErrUnknownField
)
