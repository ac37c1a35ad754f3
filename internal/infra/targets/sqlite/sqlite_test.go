package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/shopspring/decimal"
)

func TestSQLiteTargetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	tgt := NewSQLiteTarget(path)
	if err := tgt.Connect(); err != nil {
		t.Fatal(err)
	}
	defer tgt.Close()

	cols := []domain.Column{
		{Name: "data", Type: domain.ColumnTypeDate},
		{Name: "abertura", Type: domain.ColumnTypeTimestamp},
		{Name: "cliente", Type: domain.ColumnTypeString},
		{Name: "quantidade", Type: domain.ColumnTypeInt},
		{Name: "valor_r", Type: domain.ColumnTypeCurrency},
		{Name: "termino_real", Type: domain.ColumnTypeDate, Nullable: true},
	}
	if err := tgt.CreateTableIfNotExists("vendas", cols); err != nil {
		t.Fatalf("create: %v", err)
	}
	// second call is a no-op
	if err := tgt.CreateTableIfNotExists("vendas", cols); err != nil {
		t.Fatalf("create again: %v", err)
	}

	names := []string{"data", "abertura", "cliente", "quantidade", "valor_r", "termino_real"}
	rows := [][]any{
		{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 9, 41, 0, 0, time.UTC), "Ana", int64(2), decimal.RequireFromString("199.9"), nil},
		{time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 6, 17, 5, 0, 0, time.UTC), "Bruno", int64(1), decimal.RequireFromString("50"), time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
	}
	if err := tgt.InsertBatch("vendas", names, rows); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var count int
	if err := tgt.DB().QueryRow(`SELECT COUNT(*) FROM vendas`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}

	var day, opened string
	var total float64
	if err := tgt.DB().QueryRow(`SELECT data, abertura, valor_r FROM vendas WHERE cliente = 'Ana'`).Scan(&day, &opened, &total); err != nil {
		t.Fatal(err)
	}
	if day != "2024-03-05" || opened != "2024-03-05 09:41:00" {
		t.Fatalf("unexpected date text %q / %q", day, opened)
	}
	if total != 199.9 {
		t.Fatalf("expected numeric currency, got %v", total)
	}

	var nulls int
	if err := tgt.DB().QueryRow(`SELECT COUNT(*) FROM vendas WHERE termino_real IS NULL`).Scan(&nulls); err != nil {
		t.Fatal(err)
	}
	if nulls != 1 {
		t.Fatalf("expected 1 null actual end, got %d", nulls)
	}

	if err := tgt.TruncateTable("vendas"); err != nil {
		t.Fatal(err)
	}
	if err := tgt.DB().QueryRow(`SELECT COUNT(*) FROM vendas`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("expected empty table after truncate, got %d", count)
	}
}

func TestSQLiteRejectsNullInRequiredColumn(t *testing.T) {
	tgt := NewSQLiteTarget(filepath.Join(t.TempDir(), "x.db"))
	if err := tgt.Connect(); err != nil {
		t.Fatal(err)
	}
	defer tgt.Close()

	cols := []domain.Column{{Name: "cliente", Type: domain.ColumnTypeString}}
	if err := tgt.CreateTableIfNotExists("t", cols); err != nil {
		t.Fatal(err)
	}
	if err := tgt.InsertBatch("t", []string{"cliente"}, [][]any{{nil}}); err == nil {
		t.Fatal("expected NOT NULL violation")
	}
}

func TestSQLiteVersionAndDrop(t *testing.T) {
	tgt := NewSQLiteTarget(filepath.Join(t.TempDir(), "v.db"))
	if err := tgt.Connect(); err != nil {
		t.Fatal(err)
	}
	defer tgt.Close()

	ver, err := tgt.ServerVersion()
	if err != nil || !strings.HasPrefix(ver, "3.") {
		t.Fatalf("unexpected version %q err=%v", ver, err)
	}

	cols := []domain.Column{{Name: "id", Type: domain.ColumnTypeInt}}
	if err := tgt.CreateTableIfNotExists("scratch", cols); err != nil {
		t.Fatal(err)
	}
	if err := tgt.DropTable("scratch"); err != nil {
		t.Fatal(err)
	}
	if err := tgt.DropTable("scratch"); err != nil {
		t.Fatalf("dropping a missing table is a no-op, got %v", err)
	}
	var n int
	if err := tgt.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'scratch'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal("expected scratch table to be gone")
	}
}
