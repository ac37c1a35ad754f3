package app

import (
	"net/url"
	"strings"

	"github.com/mmrzaf/bizgen/internal/domain"
)

// resolveTargetForRun returns the target an export actually talks to: a
// copy of base with dbOverride applied and, for postgres, the database
// folded into the DSN and the schema defaulted to public.
func resolveTargetForRun(base *domain.TargetConfig, dbOverride string) *domain.TargetConfig {
	if base == nil {
		return nil
	}
	t := *base
	if dbOverride != "" {
		t.Database = dbOverride
	}
	if t.Kind != "postgres" {
		return &t
	}
	if t.Database != "" {
		t.DSN = withPostgresDatabase(t.DSN, t.Database)
	}
	if t.Schema == "" {
		t.Schema = "public"
	}
	return &t
}

// withPostgresDatabase points dsn at database. URL DSNs get a new path;
// keyword DSNs get their dbname pair replaced or appended.
func withPostgresDatabase(dsn, database string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return dsn
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		u.Path = "/" + database
		return u.String()
	}
	return setKeyword(dsn, "dbname", database)
}

func setKeyword(dsn, key, value string) string {
	pair := key + "=" + value
	parts := strings.Fields(dsn)
	for i, p := range parts {
		if k, _, ok := strings.Cut(p, "="); ok && strings.EqualFold(k, key) {
			parts[i] = pair
			return strings.Join(parts, " ")
		}
	}
	return strings.Join(append(parts, pair), " ")
}
