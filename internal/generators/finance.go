package generators

import (
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
)

const ClientPoolSize = 20

var (
	payableCategories  = []string{"Fornecedores", "Serviços", "Impostos"}
	yesNo              = []string{"Sim", "Não"}
	receivableStatuses = []string{"Pago", "Em Aberto", "Atrasado"}
	cashFlowKinds      = []string{"Entrada", "Saída"}
)

var payableColumns = []domain.Column{
	col("Data Vencimento", domain.ColumnTypeDate),
	col("Fornecedor", domain.ColumnTypeString),
	col("Categoria", domain.ColumnTypeString),
	col("Valor (R$)", domain.ColumnTypeCurrency),
	col("Pago", domain.ColumnTypeString),
}

// PayablesGenerator emits bills due from one month ago to one month ahead.
type PayablesGenerator struct{}

func (g *PayablesGenerator) Columns() []domain.Column {
	return copyColumns(payableColumns)
}

func (g *PayablesGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	from, err := timeutil.Window("-1M", ctx.Today)
	if err != nil {
		return nil, err
	}
	to, err := timeutil.ParseRelativeTime("+1M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(payableColumns,
			src.Day(from, to),
			src.Company(),
			random.Pick(src, payableCategories),
			src.Money(500, 10000),
			random.Pick(src, yesNo),
		))
	}
	return out, nil
}

var receivableColumns = []domain.Column{
	col("Data Recebimento", domain.ColumnTypeDate),
	col("Cliente", domain.ColumnTypeString),
	col("Nota Fiscal", domain.ColumnTypeInt),
	col("Valor (R$)", domain.ColumnTypeCurrency),
	col("Status", domain.ColumnTypeString),
}

// ReceivablesGenerator bills a fixed pool of client companies, built once
// per call, so the same clients recur across rows.
type ReceivablesGenerator struct{}

func (g *ReceivablesGenerator) Columns() []domain.Column {
	return copyColumns(receivableColumns)
}

func (g *ReceivablesGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-1M", ctx.Today)
	if err != nil {
		return nil, err
	}
	clients := make([]string, ClientPoolSize)
	for i := range clients {
		clients[i] = src.Company()
	}

	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(receivableColumns,
			src.Day(floor, ctx.Today),
			random.Pick(src, clients),
			int64(src.IntRange(1000, 9999)),
			src.Money(1000, 20000),
			random.Pick(src, receivableStatuses),
		))
	}
	return out, nil
}

var cashFlowColumns = []domain.Column{
	col("Data", domain.ColumnTypeDate),
	col("Tipo", domain.ColumnTypeString),
	col("Descrição", domain.ColumnTypeString),
	col("Valor (R$)", domain.ColumnTypeCurrency),
}

// CashFlowGenerator emits signed cash movements: outflows are negative.
type CashFlowGenerator struct{}

func (g *CashFlowGenerator) Columns() []domain.Column {
	return copyColumns(cashFlowColumns)
}

func (g *CashFlowGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-2M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		kind := random.Pick(src, cashFlowKinds)
		amount := src.Money(500, 10000)
		if kind == "Saída" {
			amount = amount.Neg()
		}
		out = append(out, record(cashFlowColumns,
			src.Day(floor, ctx.Today),
			kind,
			src.Sentence(),
			amount,
		))
	}
	return out, nil
}
