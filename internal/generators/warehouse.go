package generators

import (
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/geo"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
)

var (
	stockProducts       = []string{"Teclado", "Mouse", "Monitor", "Cabo HDMI", "Notebook"}
	distributionCenters = []string{"SP", "RJ", "MG", "PR", "RS"}
)

var inventoryColumns = []domain.Column{
	col("Produto", domain.ColumnTypeString),
	col("Quantidade", domain.ColumnTypeInt),
	col("Localização", domain.ColumnTypeString),
	col("Data Atualização", domain.ColumnTypeDate),
}

type InventoryGenerator struct{}

func (g *InventoryGenerator) Columns() []domain.Column {
	return copyColumns(inventoryColumns)
}

func (g *InventoryGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-3M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(inventoryColumns,
			random.Pick(src, stockProducts),
			int64(src.IntRange(10, 500)),
			geo.PickCity(src).Name,
			src.Day(floor, ctx.Today),
		))
	}
	return out, nil
}

var distributionColumns = []domain.Column{
	col("Centro Distribuição", domain.ColumnTypeString),
	col("Pedidos Enviados", domain.ColumnTypeInt),
	col("Pedidos Pendentes", domain.ColumnTypeInt),
	col("Data", domain.ColumnTypeDate),
}

type DistributionGenerator struct{}

func (g *DistributionGenerator) Columns() []domain.Column {
	return copyColumns(distributionColumns)
}

func (g *DistributionGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-2M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(distributionColumns,
			random.Pick(src, distributionCenters),
			int64(src.IntRange(50, 500)),
			int64(src.IntRange(0, 50)),
			src.Day(floor, ctx.Today),
		))
	}
	return out, nil
}
