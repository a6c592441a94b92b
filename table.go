package broom

import (
	"fmt"
	"sort"
)

type naValue struct{}

// NA is the canonical absent marker. It fills cells for columns a row does
// not carry, and cells whose source field a result does not report. It is
// distinct from nil, zero, and the empty string.
var NA naValue

func (naValue) String() string { return "NA" }

// IsNA reports whether v is the absent marker.
func IsNA(v any) bool {
	_, ok := v.(naValue)
	return ok
}

// Row is one observation: a mapping from column name to a scalar value.
type Row map[string]any

// Table is an ordered sequence of rows sharing an ordered set of columns.
// Rows keep insertion order; columns keep first-seen order. Cells a row does
// not carry read as [NA].
//
// The zero value is not usable; construct tables with [NewTable], [Concat],
// [DictToTidy], or the extraction entry points.
type Table struct {
	cols []string
	set  map[string]bool
	rows []Row
}

// NewTable returns an empty table with the given columns. Duplicate names
// are collapsed to their first occurrence.
func NewTable(cols ...string) *Table {
	t := &Table{set: make(map[string]bool, len(cols))}
	for _, c := range cols {
		t.addColumn(c)
	}
	return t
}

func (t *Table) addColumn(name string) {
	if t.set[name] {
		return
	}
	t.set[name] = true
	t.cols = append(t.cols, name)
}

// Append adds one row. The row is copied, so the caller may reuse r. Keys
// naming columns the table does not yet have extend the column set on the
// right; such stray keys are added in sorted order to keep output
// deterministic.
func (t *Table) Append(r Row) {
	cp := make(Row, len(r))
	var stray []string
	for k, v := range r {
		cp[k] = v
		if !t.set[k] {
			stray = append(stray, k)
		}
	}
	sort.Strings(stray)
	for _, k := range stray {
		t.addColumn(k)
	}
	t.rows = append(t.rows, cp)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool { return t.set[name] }

// Row returns row i completed with [NA] for every column the row does not
// carry. The returned map is a copy.
func (t *Table) Row(i int) Row {
	out := make(Row, len(t.cols))
	for _, c := range t.cols {
		out[c] = t.cell(i, c)
	}
	return out
}

// Cell returns the value at row i, column name; [NA] when the row does not
// carry the column.
func (t *Table) Cell(i int, name string) (any, error) {
	if !t.set[name] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return t.cell(i, name), nil
}

func (t *Table) cell(i int, name string) any {
	if v, ok := t.rows[i][name]; ok {
		return v
	}
	return NA
}

// Column returns all values of one column in row order.
func (t *Table) Column(name string) ([]any, error) {
	if !t.set[name] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]any, len(t.rows))
	for i := range t.rows {
		out[i] = t.cell(i, name)
	}
	return out, nil
}

// Records returns the table as ordered rows of ordered cells, one cell per
// column, with [NA] filled in. Useful for comparisons and for handing the
// data to another tabular engine.
func (t *Table) Records() [][]any {
	out := make([][]any, len(t.rows))
	for i := range t.rows {
		cells := make([]any, len(t.cols))
		for j, c := range t.cols {
			cells[j] = t.cell(i, c)
		}
		out[i] = cells
	}
	return out
}

// Concat concatenates tables in order. Output columns are the union of all
// input columns in first-seen order; rows keep input order and gain [NA] for
// columns their table lacked. Concat is associative: concatenating [A, B]
// and then C yields the same table as A and then [B, C]. Nil tables are
// skipped; rows are copied, so inputs stay independent of the result.
func Concat(tables ...*Table) *Table {
	out := NewTable()
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.cols {
			out.addColumn(c)
		}
		for _, r := range t.rows {
			out.Append(r)
		}
	}
	return out
}

// addPath appends a provenance column on the right. values must hold one
// entry per row. The name colliding with an existing column is an error,
// never a silent overwrite.
func (t *Table) addPath(name string, values []any) error {
	if t.set[name] {
		return fmt.Errorf("%w: path column %q already present in data", ErrColumnCollision, name)
	}
	t.addColumn(name)
	for i, r := range t.rows {
		r[name] = values[i]
	}
	return nil
}
