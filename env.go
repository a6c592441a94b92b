package broom

import (
	"fmt"
	"io"
)

// writeENV renders a two-column table, such as the output of [DictToTidy],
// as KEY=value lines.
func writeENV(w io.Writer, t *Table) error {
	if len(t.cols) != 2 {
		return fmt.Errorf("%w: format %q requires a two-column table, have %d columns",
			ErrSchemaMismatch, ENV, len(t.cols))
	}
	for i := range t.rows {
		cells := cellStrings(t, i)
		if _, err := fmt.Fprintf(w, "%s=%s\n", cells[0], cells[1]); err != nil {
			return err
		}
	}
	return nil
}
