package broom

import (
	"fmt"
	"io"
)

// writeList renders a single-column table as one value per line.
func writeList(w io.Writer, t *Table) error {
	if len(t.cols) != 1 {
		return fmt.Errorf("%w: format %q requires a single-column table, have %d columns",
			ErrSchemaMismatch, List, len(t.cols))
	}
	for i := range t.rows {
		if _, err := fmt.Fprintln(w, formatCell(t.cell(i, t.cols[0]))); err != nil {
			return err
		}
	}
	return nil
}
