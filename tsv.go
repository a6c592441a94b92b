package broom

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, strings.Join(t.cols, "\t")); err != nil {
		return err
	}
	for i := range t.rows {
		if _, err := fmt.Fprintln(w, strings.Join(cellStrings(t, i), "\t")); err != nil {
			return err
		}
	}
	return nil
}
