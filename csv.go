package broom

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return err
	}
	for i := range t.rows {
		if err := cw.Write(cellStrings(t, i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
