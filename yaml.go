package broom

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table) error {
	type doc struct {
		Columns []string `yaml:"columns"`
		Rows    [][]any  `yaml:"rows"`
	}
	d := doc{Columns: t.Columns(), Rows: make([][]any, t.Len())}
	for i := range t.rows {
		cells := make([]any, len(t.cols))
		for j, c := range t.cols {
			v := t.cell(i, c)
			if IsNA(v) {
				v = nil
			}
			cells[j] = v
		}
		d.Rows[i] = cells
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
