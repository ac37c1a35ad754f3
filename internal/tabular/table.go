// Package tabular turns generated records into a rectangular table and
// renders it for export. CSV is the reference format.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/textutil"
	"github.com/mmrzaf/bizgen/internal/timeutil"
	"github.com/shopspring/decimal"
)

const TimestampLayout = "2006-01-02 15:04"

// Assemble lays records out under columns. Every record must carry
// exactly the declared fields in the declared order.
func Assemble(columns []domain.Column, records []domain.Record) (*domain.Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	t := &domain.Table{
		Columns: make([]domain.Column, len(columns)),
		Rows:    make([][]any, 0, len(records)),
	}
	copy(t.Columns, columns)

	for i, rec := range records {
		if len(rec) != len(columns) {
			return nil, fmt.Errorf("record %d has %d fields, expected %d", i, len(rec), len(columns))
		}
		row := make([]any, len(columns))
		for j, f := range rec {
			c := columns[j]
			if f.Name != c.Name {
				return nil, fmt.Errorf("record %d field %d is %q, expected %q", i, j, f.Name, c.Name)
			}
			if f.Value == nil && !c.Nullable {
				return nil, fmt.Errorf("record %d: column %q is not nullable", i, c.Name)
			}
			row[j] = f.Value
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// FormatValue renders one cell as text. Nil renders as the empty string.
func FormatValue(c domain.Column, v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		if c.Type == domain.ColumnTypeTimestamp {
			return val.Format(TimestampLayout)
		}
		return val.Format(timeutil.DateLayout)
	case decimal.Decimal:
		return val.StringFixed(2)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}

// DefaultFileName names an export after its selector, for example
// "dados_logistica_transporte.csv" or "dados_vendas_geral.csv".
func DefaultFileName(sel domain.Selector, format Format) string {
	sub := "geral"
	if sel.Subcategory != "" {
		sub = textutil.Slug(sel.Subcategory)
	}
	ext := string(format)
	if format == FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("dados_%s_%s.%s", textutil.Slug(sel.Category), sub, ext)
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "table"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}
