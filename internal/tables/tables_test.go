package tables

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novatables/internal"
	"github.com/tuannm99/novatables/internal/common"
	"github.com/tuannm99/novatables/internal/table"
)

func checked(t *testing.T) table.Option {
	t.Helper()

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return table.WithAllocator(mem)
}

func TestSchemasAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Schemas() {
		require.NoError(t, s.Validate(), s.Name)
		require.False(t, seen[s.Name], "duplicate schema %s", s.Name)
		seen[s.Name] = true
	}
	require.Len(t, seen, 5)
}

func TestNodeTable(t *testing.T) {
	nodes, err := NewNodeTable(checked(t))
	require.NoError(t, err)
	defer nodes.Release()

	t.Run("names", func(t *testing.T) {
		require.NoError(t, nodes.SetColumns(table.Columns{
			"flags":       []uint32{1, 0, 0},
			"time":        []float64{0, 0.5, 1.25},
			"population":  []int32{0, 1, 1},
			"name":        []byte("onetwothree"),
			"name_length": []uint32{3, 3, 5},
		}))
		require.Equal(t, 3, nodes.NumRows())
		assert.Equal(t, []uint32{1, 0, 0}, nodes.Flags())
		assert.Equal(t, []float64{0, 0.5, 1.25}, nodes.Time())
		assert.Equal(t, []int32{0, 1, 1}, nodes.Population())
		assert.Equal(t, []uint32{3, 3, 5}, nodes.NameLength())

		for i, want := range []string{"one", "two", "three"} {
			got, err := nodes.NodeName(i)
			require.NoError(t, err)
			assert.Equal(t, want, string(got))
		}
	})

	t.Run("names with separator bytes", func(t *testing.T) {
		packed := bytes.Join([][]byte{[]byte("one"), []byte("two"), []byte("three")}, []byte{0})
		packed = append(packed, 0)
		require.NoError(t, nodes.SetColumns(table.Columns{
			"flags":       []uint32{0, 0, 0},
			"time":        []float64{0, 0, 0},
			"population":  []int32{0, 0, 0},
			"name":        packed,
			"name_length": []uint32{4, 4, 6},
		}))

		for i, want := range []string{"one\x00", "two\x00", "three\x00"} {
			got, err := nodes.NodeName(i)
			require.NoError(t, err)
			assert.Equal(t, want, string(got))
		}

		v, err := nodes.Column("name")
		require.NoError(t, err)
		defer v.Release()
		assert.Equal(t, packed, v.(*array.Uint8).Uint8Values())
	})

	t.Run("names as binary", func(t *testing.T) {
		list, err := nodes.List("name")
		require.NoError(t, err)
		defer list.Release()

		require.Equal(t, arrow.BinaryTypes.Binary, list.DataType())
		bin := list.(*array.Binary)
		require.Equal(t, 3, bin.Len())
		assert.Equal(t, "three\x00", string(bin.Value(2)))
	})

	t.Run("row out of range", func(t *testing.T) {
		_, err := nodes.NodeName(3)
		require.Error(t, err)
	})

	t.Run("names as signed chars", func(t *testing.T) {
		require.NoError(t, nodes.SetColumns(table.Columns{
			"flags":       []uint32{0, 0},
			"time":        []float64{0, 0},
			"population":  []int32{0, 0},
			"name":        []int8{'c', 'a', 'f', -61, -87, -1},
			"name_length": []uint32{5, 1},
		}))

		got, err := nodes.NodeName(0)
		require.NoError(t, err)
		assert.Equal(t, "café", string(got))
		got, err = nodes.NodeName(1)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff}, got)
	})
}

func TestEdgesetTable(t *testing.T) {
	edges, err := NewEdgesetTable(checked(t), table.WithIncrement("max_children_length_increment", 2))
	require.NoError(t, err)
	defer edges.Release()

	require.NoError(t, edges.SetColumns(table.Columns{
		"left":            []float64{0, 0, 5},
		"right":           []float64{10, 5, 10},
		"parent":          []int32{4, 5, 6},
		"children":        []int32{0, 1, 2, 3, 0, 1, 2},
		"children_length": []uint32{2, 3, 2},
	}))
	require.Equal(t, 3, edges.NumRows())
	assert.Equal(t, []float64{0, 0, 5}, edges.Left())
	assert.Equal(t, []float64{10, 5, 10}, edges.Right())
	assert.Equal(t, []int32{4, 5, 6}, edges.Parent())
	assert.Equal(t, []uint32{2, 3, 2}, edges.ChildrenLength())

	for i, want := range [][]int32{{0, 1}, {2, 3, 0}, {1, 2}} {
		got, err := edges.Children(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	t.Run("lengths must cover children", func(t *testing.T) {
		err := edges.SetColumns(table.Columns{
			"left":            []float64{0},
			"right":           []float64{1},
			"parent":          []int32{1},
			"children":        []int32{0, 1, 2},
			"children_length": []uint32{2},
		})
		require.True(t, common.ErrShapeMismatch.Is(err), err)
		require.Equal(t, 3, edges.NumRows())
	})

	t.Run("typed node ids", func(t *testing.T) {
		type nodeID int32

		require.NoError(t, edges.SetColumns(table.Columns{
			"left":            []float64{0},
			"right":           []float64{1},
			"parent":          []nodeID{3},
			"children":        []nodeID{1, 2},
			"children_length": []uint32{2},
		}))
		assert.Equal(t, []int32{3}, edges.Parent())

		children, err := edges.Children(0)
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2}, children)
	})

	t.Run("negative length", func(t *testing.T) {
		err := edges.SetColumns(table.Columns{
			"left":            []float64{0, 1},
			"right":           []float64{1, 2},
			"parent":          []int32{1, 1},
			"children":        []int32{0},
			"children_length": []int32{2, -1},
		})
		require.True(t, common.ErrShapeMismatch.Is(err), err)
	})
}

func TestMutationTypeTable(t *testing.T) {
	types, err := NewMutationTypeTable(checked(t))
	require.NoError(t, err)
	defer types.Release()

	require.Equal(t, map[string]int{
		"max_rows_increment":                   1,
		"max_ancestral_state_length_increment": 1,
		"max_derived_state_length_increment":   1,
	}, types.Increments())

	require.NoError(t, types.SetColumns(table.Columns{
		"ancestral_state":        []byte("AGT"),
		"ancestral_state_length": []uint32{1, 1, 1},
		"derived_state":          []byte("TCA"),
		"derived_state_length":   []uint32{1, 1, 1},
	}))
	require.Equal(t, 3, types.NumRows())
	assert.Equal(t, []uint32{1, 1, 1}, types.AncestralStateLength())
	assert.Equal(t, []uint32{1, 1, 1}, types.DerivedStateLength())

	a, err := types.AncestralState(1)
	require.NoError(t, err)
	d, err := types.DerivedState(1)
	require.NoError(t, err)
	assert.Equal(t, "G", string(a))
	assert.Equal(t, "C", string(d))

	t.Run("states of different widths", func(t *testing.T) {
		require.NoError(t, types.SetColumns(table.Columns{
			"ancestral_state":        []byte("AAT"),
			"ancestral_state_length": []uint32{2, 0, 1},
			"derived_state":          []byte("GCC"),
			"derived_state_length":   []uint32{1, 2, 0},
		}))

		a, err := types.AncestralState(1)
		require.NoError(t, err)
		assert.Empty(t, a)
		d, err := types.DerivedState(1)
		require.NoError(t, err)
		assert.Equal(t, "CC", string(d))
	})
}

func TestMutationsTable(t *testing.T) {
	muts, err := NewMutationsTable(checked(t))
	require.NoError(t, err)
	defer muts.Release()

	require.NoError(t, muts.SetColumns(table.Columns{
		"position": []float64{0.5, 2.5},
		"nodes":    []int32{3, 7},
		"type":     []uint8{0, 1},
	}))
	assert.Equal(t, []float64{0.5, 2.5}, muts.Position())
	assert.Equal(t, []int32{3, 7}, muts.Nodes())
	assert.Equal(t, []uint8{0, 1}, muts.Type())

	t.Run("type out of range", func(t *testing.T) {
		err := muts.SetColumns(table.Columns{
			"position": []float64{0.5},
			"nodes":    []int32{3},
			"type":     []int{300},
		})
		require.True(t, common.ErrTypeMismatch.Is(err), err)
		require.Equal(t, 2, muts.NumRows())
	})
}

func TestMigrationTable(t *testing.T) {
	migs, err := NewMigrationTable(checked(t), table.WithIncrement(table.FieldNumRows, 1))
	require.Nil(t, migs)
	require.True(t, common.ErrInvalidArgument.Is(err), err)

	migs, err = NewMigrationTable(checked(t))
	require.NoError(t, err)
	defer migs.Release()

	require.NoError(t, migs.SetColumns(table.Columns{
		"left":   []float64{0},
		"right":  []float64{1},
		"node":   []int32{2},
		"source": []int32{0},
		"dest":   []int32{1},
		"time":   []float64{3.5},
	}))
	assert.Equal(t, []float64{0}, migs.Left())
	assert.Equal(t, []float64{1}, migs.Right())
	assert.Equal(t, []int32{2}, migs.Node())
	assert.Equal(t, []int32{0}, migs.Source())
	assert.Equal(t, []int32{1}, migs.Dest())
	assert.Equal(t, []float64{3.5}, migs.Time())
}

func TestCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tables:
  nodes:
    max_rows_increment: 16
    max_name_length_increment: "32"
  mutation_types:
    max_ancestral_state_length_increment: 4
`), 0o644))
	cfg, err := internal.LoadConfig(path)
	require.NoError(t, err)

	c, err := NewCollection(cfg, checked(t))
	require.NoError(t, err)
	defer c.Release()

	require.Len(t, c.Tables(), 5)

	n, err := c.Nodes.Increment("max_rows_increment")
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	n, err = c.Nodes.Increment("max_name_length_increment")
	require.NoError(t, err)
	assert.Equal(t, 32, n)
	n, err = c.MutationTypes.Increment("max_ancestral_state_length_increment")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = c.Edgesets.Increment("max_rows_increment")
	require.NoError(t, err)
	assert.Equal(t, common.DefaultIncrement, n)

	require.NoError(t, c.Mutations.SetColumns(table.Columns{
		"position": []float64{1},
		"nodes":    []int32{0},
		"type":     []uint8{0},
	}))
	c.Clear()
	for _, tbl := range c.Tables() {
		assert.Zero(t, tbl.NumRows(), tbl.Name())
	}

	t.Run("invalid config value", func(t *testing.T) {
		bad := &internal.TablesConfig{Tables: map[string]map[string]any{
			"migrations": {"max_rows_increment": 0},
		}}
		c, err := NewCollection(bad, checked(t))
		require.Nil(t, c)
		require.True(t, common.ErrInvalidArgument.Is(err), err)
	})

	t.Run("nil config", func(t *testing.T) {
		c, err := NewCollection(nil, checked(t))
		require.NoError(t, err)
		c.Release()
	})
}
