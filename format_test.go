package broom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/broom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// renderTable has a numeric column with an absent cell, exercising both NA
// rendering and numeric right-alignment.
func renderTable() *broom.Table {
	tbl := broom.NewTable("name", "value")
	tbl.Append(broom.Row{"name": "a", "value": 1})
	tbl.Append(broom.Row{"name": "b"})
	return tbl
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range broom.Formats() {
		parsed, err := broom.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	tmpl, err := broom.ParseFormat("go-template={{.name}}")
	require.NoError(t, err)
	assert.Equal(t, broom.GoTemplate("{{.name}}"), tmpl)

	_, err = broom.ParseFormat("nope")
	assert.ErrorIs(t, err, broom.ErrUnsupportedFormat)
}

func TestFormatsCopy(t *testing.T) {
	t.Parallel()
	fs := broom.Formats()
	fs[0] = broom.Format("mutated")
	assert.Equal(t, broom.JSON, broom.Formats()[0])
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.CSV, renderTable()))
	assert.Equal(t, "name,value\na,1\nb,NA\n", buf.String())
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.TSV, renderTable()))
	assert.Equal(t, "name\tvalue\na\t1\nb\tNA\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.JSON, renderTable()))
	assert.Equal(t, `{"columns":["name","value"],"data":[["a",1],["b",null]]}`+"\n", buf.String())
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.JSONL, renderTable()))
	assert.Equal(t, `{"name":"a","value":1}`+"\n"+`{"name":"b","value":null}`+"\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.YAML, renderTable()))

	var doc struct {
		Columns []string `yaml:"columns"`
		Rows    [][]any  `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{"name", "value"}, doc.Columns)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []any{"a", 1}, doc.Rows[0])
	assert.Equal(t, []any{"b", nil}, doc.Rows[1])
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.Markdown, renderTable()))
	want := strings.Join([]string{
		"| name | value |",
		"| ---- | ----: |",
		"| a    |     1 |",
		"| b    |    NA |",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGridASCII(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.WriteGrid(&buf, renderTable(), broom.BorderASCII))
	want := strings.Join([]string{
		"+------+-------+",
		"| name | value |",
		"+------+-------+",
		"| a    |     1 |",
		"| b    |    NA |",
		"+------+-------+",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGridDefaultRounded(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.Grid, renderTable()))
	assert.True(t, strings.HasPrefix(buf.String(), "╭"))
	assert.Contains(t, buf.String(), "│ name │ value │")
}

func TestWriteGridBorderNone(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.WriteGrid(&buf, renderTable(), broom.BorderNone))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "name  value", lines[0])
	assert.Equal(t, "----  -----", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "1"))
	assert.True(t, strings.HasSuffix(lines[3], "NA"))
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.HTML, renderTable()))
	out := buf.String()
	assert.Contains(t, out, "<th>name</th>")
	assert.Contains(t, out, `<th style="text-align: right">value</th>`)
	assert.Contains(t, out, `<td style="text-align: right">1</td>`)
	assert.Contains(t, out, "<td>b</td>")
}

func TestWriteHTMLEscapes(t *testing.T) {
	t.Parallel()
	tbl := broom.NewTable("expr")
	tbl.Append(broom.Row{"expr": "a<b"})
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.HTML, tbl))
	assert.Contains(t, buf.String(), "a&lt;b")
}

func TestWriteENV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tbl := broom.DictToTidy(map[string]any{"x": 1, "y": 2.5})
	require.NoError(t, broom.Write(&buf, broom.ENV, tbl))
	assert.Equal(t, "x=1\ny=2.5\n", buf.String())
}

func TestWriteENVRejectsWideTable(t *testing.T) {
	t.Parallel()
	tbl := broom.NewTable("a", "b", "c")
	tbl.Append(broom.Row{"a": 1, "b": 2, "c": 3})
	err := broom.Write(&bytes.Buffer{}, broom.ENV, tbl)
	assert.ErrorIs(t, err, broom.ErrSchemaMismatch)
}

func TestWriteList(t *testing.T) {
	t.Parallel()
	tbl := broom.NewTable("name")
	tbl.Append(broom.Row{"name": "a"})
	tbl.Append(broom.Row{"name": "b"})
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.List, tbl))
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestWriteListRejectsWideTable(t *testing.T) {
	t.Parallel()
	err := broom.Write(&bytes.Buffer{}, broom.List, renderTable())
	assert.ErrorIs(t, err, broom.ErrSchemaMismatch)
}

func TestWriteGoTemplate(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.GoTemplate("{{.name}}={{.value}}"), renderTable()))
	assert.Equal(t, "a=1\nb=NA\n", buf.String())
}

func TestWriteGoTemplateInvalid(t *testing.T) {
	t.Parallel()
	err := broom.Write(&bytes.Buffer{}, broom.GoTemplate("{{.name"), renderTable())
	assert.ErrorIs(t, err, broom.ErrInvalidTemplate)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	err := broom.Write(&bytes.Buffer{}, broom.Format("nope"), renderTable())
	assert.ErrorIs(t, err, broom.ErrUnsupportedFormat)
}

func TestWriteNilAndEmptyTables(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, broom.Write(&buf, broom.CSV, nil))
	require.NoError(t, broom.Write(&buf, broom.CSV, broom.NewTable()))
	require.NoError(t, broom.WriteGrid(&buf, nil, broom.BorderASCII))
	assert.Empty(t, buf.String())
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	data, err := broom.Marshal(broom.CSV, renderTable())
	require.NoError(t, err)
	assert.Equal(t, "name,value\na,1\nb,NA\n", string(data))
}

func TestMarshalError(t *testing.T) {
	t.Parallel()
	_, err := broom.Marshal(broom.Format("nope"), renderTable())
	assert.ErrorIs(t, err, broom.ErrUnsupportedFormat)
}

// Rendering an extracted view end to end.
func TestWriteSummaryCSV(t *testing.T) {
	t.Parallel()
	tbl, err := broom.Summary([]*broom.MinimizerResult{newMinimizerResult()})
	require.NoError(t, err)
	data, err := broom.Marshal(broom.CSV, tbl)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "method,num_params,num_data_points,chisqr,redchi,AIC,BIC,num_func_eval,success,message,item0", lines[0])
	assert.Equal(t, "leastsq,2,10,1.2,0.15,-10.5,-8.1,24,true,converged,0", lines[1])
}
