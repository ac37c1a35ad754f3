package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/shopspring/decimal"
)

// maxParams is the bind parameter limit of the postgres wire protocol.
const maxParams = 65535

type PostgresTarget struct {
	dsn    string
	schema string
	db     *sql.DB
}

func NewPostgresTarget(dsn, schema string) *PostgresTarget {
	if schema == "" {
		schema = "public"
	}
	return &PostgresTarget{
		dsn:    dsn,
		schema: schema,
	}
}

func (t *PostgresTarget) Connect() error {
	db, err := sql.Open("postgres", t.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}
	t.db = db
	return nil
}

func (t *PostgresTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *PostgresTarget) CreateTableIfNotExists(tableName string, columns []domain.Column) error {
	var exists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	)`
	err := t.db.QueryRow(query, t.schema, tableName).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = t.db.Exec(CreateTableSQL(t.schema, tableName, columns))
	return err
}

// CreateTableSQL renders the DDL for a generated table.
func CreateTableSQL(schema, tableName string, columns []domain.Column) string {
	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		nullable := ""
		if !col.Nullable {
			nullable = " NOT NULL"
		}
		columnDefs[i] = fmt.Sprintf("%s %s%s", col.Name, mapColumnType(col.Type), nullable)
	}
	return fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		schema, tableName, strings.Join(columnDefs, ", "))
}

func mapColumnType(colType domain.ColumnType) string {
	switch colType {
	case domain.ColumnTypeInt:
		return "BIGINT"
	case domain.ColumnTypeFloat:
		return "DOUBLE PRECISION"
	case domain.ColumnTypeCurrency:
		return "NUMERIC(12,2)"
	case domain.ColumnTypeString:
		return "TEXT"
	case domain.ColumnTypeTimestamp:
		return "TIMESTAMP"
	case domain.ColumnTypeDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

func (t *PostgresTarget) ServerVersion() (string, error) {
	var version string
	err := t.db.QueryRow("SHOW server_version").Scan(&version)
	return version, err
}

func (t *PostgresTarget) DropTable(tableName string) error {
	_, err := t.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s.%s", t.schema, tableName))
	return err
}

func (t *PostgresTarget) TruncateTable(tableName string) error {
	_, err := t.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", t.schema, tableName))
	return err
}

func (t *PostgresTarget) InsertBatch(tableName string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	insertSQL, args, err := InsertSQL(t.schema, tableName, columns, rows)
	if err != nil {
		return err
	}
	_, err = t.db.Exec(insertSQL, args...)
	return err
}

// InsertSQL builds one multi-row INSERT with positional parameters.
func InsertSQL(schema, tableName string, columns []string, rows [][]any) (string, []any, error) {
	if len(rows)*len(columns) > maxParams {
		return "", nil, fmt.Errorf("batch of %d rows x %d columns exceeds %d parameters", len(rows), len(columns), maxParams)
	}

	placeholders := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(columns))

	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("row %d has %d values for %d columns", i, len(row), len(columns))
		}
		rowPlaceholders := make([]string, len(columns))
		for j := range columns {
			paramNum := i*len(columns) + j + 1
			rowPlaceholders[j] = fmt.Sprintf("$%d", paramNum)

			if d, ok := row[j].(decimal.Decimal); ok {
				args = append(args, d.StringFixed(2))
			} else {
				args = append(args, row[j])
			}
		}
		placeholders[i] = "(" + strings.Join(rowPlaceholders, ", ") + ")"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		schema, tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	return insertSQL, args, nil
}
