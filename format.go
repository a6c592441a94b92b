package broom

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format represents an output format for rendering a [Table].
type Format string

const (
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Grid     Format = "grid"
	Markdown Format = "markdown"
	HTML     Format = "html"
	ENV      Format = "env"
	List     Format = "list"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, JSONL, YAML, CSV, TSV, Grid, Markdown, HTML, ENV, List}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go
// text/template. Row cells are addressable by column name, e.g. {{.value}}.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls Grid border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders t in format f. A nil or column-less table writes nothing.
func Write(w io.Writer, f Format, t *Table) error {
	if t == nil || len(t.cols) == 0 {
		return nil
	}
	switch f {
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Grid:
		return writeGrid(w, t, BorderRounded)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case ENV:
		return writeENV(w, t)
	case List:
		return writeList(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteGrid renders t as a text table with the given border style. Write
// with the Grid format uses [BorderRounded].
func WriteGrid(w io.Writer, t *Table, style BorderStyle) error {
	if t == nil || len(t.cols) == 0 {
		return nil
	}
	return writeGrid(w, t, style)
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatCell renders one cell for the text formats. NA renders as "NA",
// floats in their shortest exact form.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case naValue:
		return "NA"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	}
	return fmt.Sprint(v)
}

func cellStrings(t *Table, i int) []string {
	out := make([]string, len(t.cols))
	for j, c := range t.cols {
		out[j] = formatCell(t.cell(i, c))
	}
	return out
}

// columnAlignments right-aligns columns whose every present value is
// numeric; NA cells do not disqualify a column.
func columnAlignments(t *Table) []Alignment {
	out := make([]Alignment, len(t.cols))
	for j, c := range t.cols {
		numeric := false
		for i := range t.rows {
			v := t.cell(i, c)
			if IsNA(v) || v == nil {
				continue
			}
			if !isNumeric(v) {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			out[j] = AlignRight
		}
	}
	return out
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
