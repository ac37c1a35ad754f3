package exec

import (
	"fmt"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/generators"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/registry"
	"github.com/mmrzaf/bizgen/internal/tabular"
	"github.com/mmrzaf/bizgen/internal/textutil"
	"github.com/mmrzaf/bizgen/internal/timeutil"
	"github.com/mmrzaf/bizgen/internal/validation"
)

// Target is a SQL sink a generated table can be exported to.
type Target interface {
	Connect() error
	Close() error
	CreateTableIfNotExists(tableName string, columns []domain.Column) error
	TruncateTable(tableName string) error
	InsertBatch(tableName string, columns []string, rows [][]any) error
}

type Executor struct {
	genRegistry *registry.GeneratorRegistry
	validator   *validation.Validator
}

func NewExecutor(genRegistry *registry.GeneratorRegistry) *Executor {
	return &Executor{
		genRegistry: genRegistry,
		validator:   validation.NewValidator(genRegistry),
	}
}

// Generate validates req, runs the matching generator once for all rows
// and assembles the records into a table. Invalid requests return an
// error wrapping domain.ErrInvalidRequest and no table.
func (e *Executor) Generate(src *random.Source, req domain.GenerationRequest, today time.Time) (*domain.Table, error) {
	if err := e.validator.ValidateRequest(&req); err != nil {
		return nil, err
	}
	gen, err := e.genRegistry.Get(req.Selector())
	if err != nil {
		return nil, err
	}

	ctx := generators.GeneratorContext{Today: timeutil.StartOfDay(today)}
	records, err := gen.Generate(src, ctx, req.Rows)
	if err != nil {
		return nil, fmt.Errorf("generator %s failed: %w", req.Selector(), err)
	}
	if len(records) != req.Rows {
		return nil, fmt.Errorf("generator %s returned %d rows, expected %d", req.Selector(), len(records), req.Rows)
	}

	table, err := tabular.Assemble(gen.Columns(), records)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %s: %w", req.Selector(), err)
	}
	return table, nil
}

// SQLColumns maps display columns to SQL-safe identifiers: "Valor (R$)"
// becomes "valor_r". Reserved words get a trailing underscore.
func SQLColumns(columns []domain.Column) ([]domain.Column, error) {
	out := make([]domain.Column, len(columns))
	seen := make(map[string]string, len(columns))
	for i, c := range columns {
		name := textutil.Slug(c.Name)
		if name == "" {
			return nil, fmt.Errorf("column %q has no usable identifier", c.Name)
		}
		if !validation.IsValidIdentifier(name) {
			name += "_"
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("columns %q and %q both map to %s", prev, c.Name, name)
		}
		seen[name] = c.Name
		out[i] = domain.Column{Name: name, Type: c.Type, Nullable: c.Nullable}
	}
	return out, nil
}

// Export writes table to target in batches of batchSize rows, preparing
// the destination table according to mode.
func (e *Executor) Export(table *domain.Table, target Target, tableName, mode string, batchSize int) (*domain.ExportStats, error) {
	if err := e.validator.ValidateExport(tableName, mode, batchSize); err != nil {
		return nil, err
	}
	columns, err := SQLColumns(table.Columns)
	if err != nil {
		return nil, err
	}

	if err := target.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	startTime := time.Now()

	switch mode {
	case domain.TableModeCreate:
		if err := target.CreateTableIfNotExists(tableName, columns); err != nil {
			return nil, fmt.Errorf("failed to create table '%s': %w", tableName, err)
		}
	case domain.TableModeTruncate:
		if err := target.CreateTableIfNotExists(tableName, columns); err != nil {
			return nil, fmt.Errorf("failed to create table '%s': %w", tableName, err)
		}
		if err := target.TruncateTable(tableName); err != nil {
			return nil, fmt.Errorf("failed to truncate table '%s': %w", tableName, err)
		}
	case domain.TableModeAppend:
	default:
		return nil, fmt.Errorf("unknown table mode: %s", mode)
	}

	columnNames := make([]string, len(columns))
	for i, c := range columns {
		columnNames[i] = c.Name
	}

	stats := &domain.ExportStats{Table: tableName}
	for start := 0; start < len(table.Rows); start += batchSize {
		end := start + batchSize
		if end > len(table.Rows) {
			end = len(table.Rows)
		}
		if err := target.InsertBatch(tableName, columnNames, table.Rows[start:end]); err != nil {
			return nil, fmt.Errorf("failed to insert batch %d into '%s': %w", stats.Batches, tableName, err)
		}
		stats.Batches++
		stats.RowsWritten += int64(end - start)
	}

	stats.DurationSeconds = time.Since(startTime).Seconds()
	return stats, nil
}
