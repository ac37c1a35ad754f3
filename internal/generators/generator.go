package generators

import (
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/shopspring/decimal"
)

// Generator produces the records of one (category, subcategory) ruleset.
// Columns is fixed per generator and every record Generate returns carries
// exactly those fields in that order.
type Generator interface {
	Columns() []domain.Column
	Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error)
}

type GeneratorContext struct {
	// Today is the reference date, truncated to midnight. No generated
	// date that represents something already done lies after it.
	Today time.Time
}

func record(cols []domain.Column, values ...any) domain.Record {
	r := make(domain.Record, len(cols))
	for i, c := range cols {
		var v any
		if i < len(values) {
			v = values[i]
		}
		r[i] = domain.Field{Name: c.Name, Value: v}
	}
	return r
}

func col(name string, t domain.ColumnType) domain.Column {
	return domain.Column{Name: name, Type: t}
}

func nullable(name string, t domain.ColumnType) domain.Column {
	return domain.Column{Name: name, Type: t, Nullable: true}
}

func round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

func copyColumns(cols []domain.Column) []domain.Column {
	out := make([]domain.Column, len(cols))
	copy(out, cols)
	return out
}
