package table

import (
	"log/slog"

	"github.com/tuannm99/novatables/internal/column"
	"github.com/tuannm99/novatables/internal/dtype"
	"github.com/tuannm99/novatables/internal/record"
	"github.com/tuannm99/novatables/internal/validate"
)

// SetColumns replaces the whole table. Every input name of the schema must be
// present. All columns are validated and encoded before any buffer changes, so a
// failed call leaves the table exactly as it was.
func (t *Table) SetColumns(cols Columns) error {
	if t.released {
		return ErrReleased
	}
	if err := validate.Coverage(t.schema.InputNames(), cols); err != nil {
		return err
	}

	fixed := make(map[string]column.Staged, len(t.fixed))
	ragged := make(map[string]column.StagedRagged, len(t.ragged))
	counts := make([]validate.Count, 0, t.schema.NumCols())

	for _, c := range t.schema.Cols {
		switch c.Kind {
		case record.Fixed:
			s, err := t.fixed[c.Name].Stage(dtype.Wrap(cols[c.Name]))
			if err != nil {
				return err
			}
			fixed[c.Name] = s
			counts = append(counts, validate.Count{Column: c.Name, Rows: s.Rows()})

		case record.Ragged:
			s, err := t.ragged[c.Name].Stage(dtype.Wrap(cols[c.Name]), dtype.Wrap(cols[c.LengthName()]))
			if err != nil {
				return err
			}
			ragged[c.Name] = s
			counts = append(counts, validate.Count{Column: c.LengthName(), Rows: s.Rows()})
		}
	}

	rows, err := validate.RowCounts(counts)
	if err != nil {
		return err
	}

	// Nothing below can fail.
	for name, s := range fixed {
		t.fixed[name].Commit(s)
	}
	for name, s := range ragged {
		t.ragged[name].Commit(s)
	}

	slog.Debug("table: set columns",
		"table", t.schema.Name,
		"rows", rows,
	)
	return nil
}
