package broom

import (
	"bytes"
	"encoding/json"
	"io"
)

// writeJSON emits a single ordered document:
//
//	{"columns": ["a", "b"], "data": [[1, 2], [3, null]]}
//
// Cells are positional so column order survives; NA becomes null.
func writeJSON(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	buf.WriteString(`{"columns":`)
	cols, err := json.Marshal(t.cols)
	if err != nil {
		return err
	}
	buf.Write(cols)
	buf.WriteString(`,"data":[`)
	for i := range t.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for j, c := range t.cols {
			if j > 0 {
				buf.WriteByte(',')
			}
			cell, err := jsonCell(t.cell(i, c))
			if err != nil {
				return err
			}
			buf.Write(cell)
		}
		buf.WriteByte(']')
	}
	buf.WriteString("]}\n")
	_, err = w.Write(buf.Bytes())
	return err
}

// writeJSONL emits one ordered object per row, NA as null.
func writeJSONL(w io.Writer, t *Table) error {
	for i := range t.rows {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for j, c := range t.cols {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(c)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			cell, err := jsonCell(t.cell(i, c))
			if err != nil {
				return err
			}
			buf.Write(cell)
		}
		buf.WriteString("}\n")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func jsonCell(v any) ([]byte, error) {
	if v == nil || IsNA(v) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
