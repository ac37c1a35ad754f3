package generators

import (
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
)

var (
	supportStatuses      = []string{"Resolvido", "Em Andamento", "Cancelado"}
	helpdeskCategories   = []string{"Hardware", "Software", "Rede", "E-mail"}
	helpdeskPriorities   = []string{"Baixa", "Média", "Alta"}
	helpdeskStatuses     = []string{"Fechado", "Aberto", "Em Análise"}
	maintenanceKinds     = []string{"Preventiva", "Corretiva"}
	maintenanceEquipment = []string{
		"Compressor", "Empilhadeira", "Gerador", "Esteira", "Ar-condicionado",
		"Servidor", "Caldeira", "Bomba Hidráulica", "Elevador", "Nobreak",
	}
)

const (
	minHandlingMinutes = 15
	maxHandlingMinutes = 240
)

var supportColumns = []domain.Column{
	col("ID Chamado", domain.ColumnTypeString),
	col("Cliente", domain.ColumnTypeString),
	col("Data Abertura", domain.ColumnTypeTimestamp),
	col("Data Fechamento", domain.ColumnTypeTimestamp),
	col("Tempo (min)", domain.ColumnTypeInt),
	col("Atendente", domain.ColumnTypeString),
	col("Status", domain.ColumnTypeString),
}

// SupportGenerator emits support calls opened between 30 days and one day
// before the reference date, each closed 15 to 240 minutes after opening.
type SupportGenerator struct{}

func (g *SupportGenerator) Columns() []domain.Column {
	return copyColumns(supportColumns)
}

func (g *SupportGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	from, err := timeutil.ParseRelativeTime("-30d", ctx.Today)
	if err != nil {
		return nil, err
	}
	to, err := timeutil.ParseRelativeTime("-1d", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		opened := src.Instant(from, to).Truncate(time.Minute)
		minutes := src.IntRange(minHandlingMinutes, maxHandlingMinutes)
		closed := opened.Add(time.Duration(minutes) * time.Minute)
		out = append(out, record(supportColumns,
			src.TicketID(),
			src.Company(),
			opened,
			closed,
			int64(closed.Sub(opened)/time.Minute),
			src.FirstName(),
			random.Pick(src, supportStatuses),
		))
	}
	return out, nil
}

var helpdeskColumns = []domain.Column{
	col("Ticket", domain.ColumnTypeString),
	col("Usuário", domain.ColumnTypeString),
	col("Categoria", domain.ColumnTypeString),
	col("Prioridade", domain.ColumnTypeString),
	col("Status", domain.ColumnTypeString),
}

type HelpdeskGenerator struct{}

func (g *HelpdeskGenerator) Columns() []domain.Column {
	return copyColumns(helpdeskColumns)
}

func (g *HelpdeskGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(helpdeskColumns,
			src.TicketID(),
			src.Name(),
			random.Pick(src, helpdeskCategories),
			random.Pick(src, helpdeskPriorities),
			random.Pick(src, helpdeskStatuses),
		))
	}
	return out, nil
}

var maintenanceColumns = []domain.Column{
	col("Equipamento", domain.ColumnTypeString),
	col("Tipo", domain.ColumnTypeString),
	col("Responsável", domain.ColumnTypeString),
	col("Data Execução", domain.ColumnTypeDate),
	col("Custo (R$)", domain.ColumnTypeCurrency),
}

type MaintenanceGenerator struct{}

func (g *MaintenanceGenerator) Columns() []domain.Column {
	return copyColumns(maintenanceColumns)
}

func (g *MaintenanceGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	floor, err := timeutil.Window("-3M", ctx.Today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, record(maintenanceColumns,
			random.Pick(src, maintenanceEquipment),
			random.Pick(src, maintenanceKinds),
			src.Name(),
			src.Day(floor, ctx.Today),
			src.Money(300, 8000),
		))
	}
	return out, nil
}
