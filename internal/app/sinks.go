package app

import (
	"fmt"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/exec"
	pgTarget "github.com/mmrzaf/bizgen/internal/infra/targets/postgres"
	sqliteTarget "github.com/mmrzaf/bizgen/internal/infra/targets/sqlite"
)

// newSink builds the export adapter for an already resolved target.
func newSink(t *domain.TargetConfig) (exec.Target, error) {
	switch t.Kind {
	case "postgres":
		return pgTarget.NewPostgresTarget(t.DSN, t.Schema), nil
	case "sqlite":
		return sqliteTarget.NewSQLiteTarget(t.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported target kind: %s", t.Kind)
	}
}
