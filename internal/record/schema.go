package record

import (
	"errors"
	"fmt"

	"github.com/tuannm99/novatables/internal/dtype"
)

// RowsIncrement is the increment parameter every schema declares. It sizes all fixed
// columns and all ragged length arrays.
const RowsIncrement = "max_rows_increment"

const lengthSuffix = "_length"

var ErrBadSchema = errors.New("record: invalid schema")

type ColumnKind uint8

const (
	Fixed ColumnKind = iota + 1
	Ragged
)

func (k ColumnKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Ragged:
		return "ragged"
	default:
		return "unknown"
	}
}

type Column struct {
	Name string
	Kind ColumnKind
	Type dtype.DType

	// Ragged only.
	LengthType dtype.DType
	Increment  string
}

// LengthName is the input/view name of a ragged column's length array.
func (c Column) LengthName() string { return c.Name + lengthSuffix }

// Param is a growth-increment parameter and its default.
type Param struct {
	Name    string
	Default int
}

// Schema is the static description of one table variant.
type Schema struct {
	Name   string
	Cols   []Column
	Params []Param
}

func FixedCol(name string, dt dtype.DType) Column {
	return Column{Name: name, Kind: Fixed, Type: dt}
}

// RaggedCol declares a ragged column whose data buffer grows by the named increment
// parameter. Lengths are stored as uint32.
func RaggedCol(name string, elem dtype.DType, increment string) Column {
	return Column{Name: name, Kind: Ragged, Type: elem, LengthType: dtype.Uint32, Increment: increment}
}

func (s *Schema) NumCols() int { return len(s.Cols) }

// InputNames lists every array SetColumns expects, in declaration order. A ragged
// column contributes its data name followed by its length name.
func (s *Schema) InputNames() []string {
	names := make([]string, 0, len(s.Cols)+2)
	for _, c := range s.Cols {
		names = append(names, c.Name)
		if c.Kind == Ragged {
			names = append(names, c.LengthName())
		}
	}
	return names
}

// RowNames lists the inputs whose length is the row count.
func (s *Schema) RowNames() []string {
	names := make([]string, 0, len(s.Cols))
	for _, c := range s.Cols {
		if c.Kind == Ragged {
			names = append(names, c.LengthName())
		} else {
			names = append(names, c.Name)
		}
	}
	return names
}

// Lookup resolves an input or view name. isLength is true when name refers to the
// length array of a ragged column.
func (s *Schema) Lookup(name string) (col Column, isLength bool, ok bool) {
	for _, c := range s.Cols {
		if c.Name == name {
			return c, false, true
		}
		if c.Kind == Ragged && c.LengthName() == name {
			return c, true, true
		}
	}
	return Column{}, false, false
}

func (s *Schema) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Validate checks the descriptor itself: unique names, known dtypes, and increment
// parameters that exist.
func (s *Schema) Validate() error {
	if len(s.Cols) == 0 {
		return fmt.Errorf("%w: %s: no columns", ErrBadSchema, s.Name)
	}
	if _, ok := s.Param(RowsIncrement); !ok {
		return fmt.Errorf("%w: %s: missing %s", ErrBadSchema, s.Name, RowsIncrement)
	}
	seen := make(map[string]bool)
	for _, name := range s.InputNames() {
		if seen[name] {
			return fmt.Errorf("%w: %s: duplicate column %q", ErrBadSchema, s.Name, name)
		}
		seen[name] = true
	}
	for _, p := range s.Params {
		if seen[p.Name] {
			return fmt.Errorf("%w: %s: parameter %q shadows a column", ErrBadSchema, s.Name, p.Name)
		}
		if p.Default <= 0 {
			return fmt.Errorf("%w: %s: parameter %q has default %d", ErrBadSchema, s.Name, p.Name, p.Default)
		}
	}
	for _, c := range s.Cols {
		if c.Type.Size() == 0 {
			return fmt.Errorf("%w: %s: column %q has no element type", ErrBadSchema, s.Name, c.Name)
		}
		if c.Kind != Ragged {
			continue
		}
		if !c.LengthType.IsInteger() {
			return fmt.Errorf("%w: %s: column %q has length type %s", ErrBadSchema, s.Name, c.Name, c.LengthType)
		}
		if _, ok := s.Param(c.Increment); !ok {
			return fmt.Errorf("%w: %s: column %q uses undeclared parameter %q", ErrBadSchema, s.Name, c.Name, c.Increment)
		}
	}
	return nil
}
