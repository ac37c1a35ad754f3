package tabular

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// utf8BOM lets spreadsheet tools detect the encoding of accented headers.
const utf8BOM = "\uFEFF"

type Options struct {
	// BOM prefixes CSV output with a UTF-8 byte order mark.
	BOM bool
	// Limit caps the rows of the text preview. Zero means all rows.
	Limit int
}

// Write renders t in format.
func Write(w io.Writer, t *domain.Table, format Format, opts Options) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t, opts.BOM)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatYAML:
		return WriteYAML(w, t)
	case FormatText:
		return WriteText(w, t, opts.Limit)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteCSV writes a header row followed by one line per record, comma
// separated.
func WriteCSV(w io.Writer, t *domain.Table, bom bool) error {
	if bom {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	line := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, v := range row {
			line[j] = FormatValue(t.Columns[j], v)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes an array of objects whose keys keep column order.
// Numbers stay numbers; currency is fixed to two decimals.
func WriteJSON(w io.Writer, t *domain.Table) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("[")
	for i, row := range t.Rows {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  {")
		for j, v := range row {
			if j > 0 {
				bw.WriteString(", ")
			}
			key, err := json.Marshal(t.Columns[j].Name)
			if err != nil {
				return err
			}
			val, err := json.Marshal(jsonValue(t.Columns[j], v))
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", i, t.Columns[j].Name, err)
			}
			bw.Write(key)
			bw.WriteString(": ")
			bw.Write(val)
		}
		bw.WriteString("}")
	}
	if len(t.Rows) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

func jsonValue(c domain.Column, v any) any {
	switch val := v.(type) {
	case nil, string, int64, float64:
		return val
	case decimal.Decimal:
		return json.Number(val.StringFixed(2))
	default:
		return FormatValue(c, v)
	}
}

// WriteYAML writes a sequence of mappings. Mapping keys keep column order.
func WriteYAML(w io.Writer, t *domain.Table) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for j, v := range row {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.Columns[j].Name},
				yamlValue(t.Columns[j], v),
			)
		}
		doc.Content = append(doc.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func yamlValue(c domain.Column, v any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: FormatValue(c, v)}
	switch v.(type) {
	case nil:
		n.Tag, n.Value = "!!null", "null"
	case int64, int:
		n.Tag = "!!int"
	case float64, decimal.Decimal:
		n.Tag = "!!float"
	default:
		n.Tag = "!!str"
	}
	return n
}

// WriteText renders an aligned preview of the first limit rows.
func WriteText(w io.Writer, t *domain.Table, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.ColumnNames(), "\t"))

	rows := t.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	cells := make([]string, len(t.Columns))
	for _, row := range rows {
		for j, v := range row {
			cells[j] = FormatValue(t.Columns[j], v)
			if cells[j] == "" {
				cells[j] = "-"
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(rows) < len(t.Rows) {
		_, err := fmt.Fprintf(w, "... %d more rows\n", len(t.Rows)-len(rows))
		return err
	}
	return nil
}
