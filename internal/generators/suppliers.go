package generators

import (
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/geo"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
)

var supplierCategories = []string{"Matéria-Prima", "Embalagens", "Serviços", "Logística", "TI", "Manutenção"}

var supplierColumns = []domain.Column{
	col("Fornecedor", domain.ColumnTypeString),
	col("CNPJ", domain.ColumnTypeString),
	col("Categoria", domain.ColumnTypeString),
	col("Cidade", domain.ColumnTypeString),
	col("UF", domain.ColumnTypeString),
	col("Prazo de Entrega (dias)", domain.ColumnTypeInt),
	col("Avaliação", domain.ColumnTypeFloat),
	col("Último Pedido", domain.ColumnTypeDate),
}

// SupplierGenerator emits a supplier registry with delivery lead times and
// a 1.0 to 5.0 rating.
type SupplierGenerator struct{}

func (g *SupplierGenerator) Columns() []domain.Column {
	return copyColumns(supplierColumns)
}

func (g *SupplierGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-6M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		city := geo.PickCity(src)
		out = append(out, record(supplierColumns,
			src.Company(),
			src.CNPJ(),
			random.Pick(src, supplierCategories),
			city.Name,
			city.State,
			int64(src.IntRange(1, 30)),
			round(src.Float(1, 5), 1),
			src.Day(floor, ctx.Today),
		))
	}
	return out, nil
}
