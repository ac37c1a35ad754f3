package generators

import (
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
)

var (
	specialties = []string{"Clínico Geral", "Cardiologia", "Ortopedia", "Dermatologia", "Pediatria"}
	insurers    = []string{"Particular", "Plano A", "Plano B", "SUS"}

	jobTitles   = []string{"Coordenador", "Gerente", "Técnico", "Pleno", "Júnior", "Sênior"}
	departments = []string{"TI", "Financeiro", "Vendas", "Marketing", "Operações"}
)

var healthColumns = []domain.Column{
	col("Data da Consulta", domain.ColumnTypeDate),
	col("Paciente", domain.ColumnTypeString),
	col("Especialidade", domain.ColumnTypeString),
	col("Convênio", domain.ColumnTypeString),
	col("Valor (R$)", domain.ColumnTypeCurrency),
	col("Médico", domain.ColumnTypeString),
}

// HealthGenerator emits medical appointments from the last six months.
type HealthGenerator struct{}

func (g *HealthGenerator) Columns() []domain.Column {
	return copyColumns(healthColumns)
}

func (g *HealthGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-6M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(healthColumns,
			src.Day(floor, ctx.Today),
			src.Name(),
			random.Pick(src, specialties),
			random.Pick(src, insurers),
			src.Money(100, 500),
			"Dr(a). "+src.LastName(),
		))
	}
	return out, nil
}

var hrColumns = []domain.Column{
	col("Nome", domain.ColumnTypeString),
	col("Cargo", domain.ColumnTypeString),
	col("Departamento", domain.ColumnTypeString),
	col("Data de Admissão", domain.ColumnTypeDate),
	col("Salário (R$)", domain.ColumnTypeCurrency),
}

// HRGenerator emits employees hired within the last five years.
type HRGenerator struct{}

func (g *HRGenerator) Columns() []domain.Column {
	return copyColumns(hrColumns)
}

func (g *HRGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-5y", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(hrColumns,
			src.Name(),
			random.Pick(src, jobTitles),
			random.Pick(src, departments),
			src.Day(floor, ctx.Today),
			src.Money(2000, 15000),
		))
	}
	return out, nil
}
