package postgres

import (
	"strings"
	"testing"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/shopspring/decimal"
)

func TestCreateTableSQL(t *testing.T) {
	got := CreateTableSQL("public", "transporte", []domain.Column{
		{Name: "data_inicio", Type: domain.ColumnTypeDate},
		{Name: "distancia_km", Type: domain.ColumnTypeFloat},
		{Name: "custo_combustivel", Type: domain.ColumnTypeCurrency},
		{Name: "termino_real", Type: domain.ColumnTypeDate, Nullable: true},
	})
	want := "CREATE TABLE public.transporte (data_inicio DATE NOT NULL, distancia_km DOUBLE PRECISION NOT NULL, " +
		"custo_combustivel NUMERIC(12,2) NOT NULL, termino_real DATE)"
	if got != want {
		t.Fatalf("unexpected DDL:\n got %s\nwant %s", got, want)
	}
}

func TestInsertSQL(t *testing.T) {
	query, args, err := InsertSQL("public", "rh", []string{"nome", "salario_r"}, [][]any{
		{"Ana", decimal.RequireFromString("2500.5")},
		{"Bruno", decimal.RequireFromString("3000")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(query, "VALUES ($1, $2), ($3, $4)") {
		t.Fatalf("unexpected placeholders: %s", query)
	}
	if len(args) != 4 || args[1] != "2500.50" || args[3] != "3000.00" {
		t.Fatalf("unexpected args %#v", args)
	}

	if _, _, err := InsertSQL("public", "rh", []string{"nome"}, [][]any{{"a", "b"}}); err == nil {
		t.Fatal("expected ragged row error")
	}

	big := make([][]any, 70000)
	for i := range big {
		big[i] = []any{i}
	}
	if _, _, err := InsertSQL("public", "rh", []string{"n"}, big); err == nil {
		t.Fatal("expected parameter limit error")
	}
}
