package validation

import (
	"errors"
	"testing"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/registry"
)

func TestValidateRequest_RowBounds(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	for _, rows := range []int{domain.MinRows, 500, domain.MaxRows} {
		req := &domain.GenerationRequest{Category: "Vendas", Rows: rows}
		if err := v.ValidateRequest(req); err != nil {
			t.Fatalf("rows=%d: expected valid, got %v", rows, err)
		}
	}
	for _, rows := range []int{0, 9, 1001, -5} {
		req := &domain.GenerationRequest{Category: "Vendas", Rows: rows}
		err := v.ValidateRequest(req)
		if err == nil {
			t.Fatalf("rows=%d: expected error", rows)
		}
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("rows=%d: expected ErrInvalidRequest, got %v", rows, err)
		}
	}
}

func TestValidateRequest_CanonicalizesSelector(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	req := &domain.GenerationRequest{Category: "financeiro", Subcategory: "fluxo de caixa", Rows: 10}
	if err := v.ValidateRequest(req); err != nil {
		t.Fatal(err)
	}
	if req.Category != "Financeiro" || req.Subcategory != "Fluxo de Caixa" {
		t.Fatalf("expected canonical selector, got %s", req.Selector())
	}
}

func TestValidateRequest_SubcategoryRules(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	bad := []domain.GenerationRequest{
		{Category: "Logística", Rows: 10},
		{Category: "Logística", Subcategory: "Armazém", Rows: 10},
		{Category: "RH", Subcategory: "Folha", Rows: 10},
		{Category: "Marketing", Rows: 10},
	}
	for i := range bad {
		err := v.ValidateRequest(&bad[i])
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("%s: expected ErrInvalidRequest, got %v", bad[i].Selector(), err)
		}
	}
	if err := v.ValidateRequest(nil); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("nil request: expected ErrInvalidRequest, got %v", err)
	}
}

func TestValidatePreset(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	ok := &domain.Preset{
		ID:                "vendas_mensal",
		Name:              "Vendas",
		GenerationRequest: domain.GenerationRequest{Category: "Vendas", Rows: 100},
	}
	if err := v.ValidatePreset(ok); err != nil {
		t.Fatalf("expected valid preset, got %v", err)
	}

	traversal := *ok
	traversal.ID = "../etc/passwd"
	if err := v.ValidatePreset(&traversal); err == nil {
		t.Fatal("expected path-like preset id to be rejected")
	}

	tooMany := *ok
	tooMany.Rows = 5000
	if err := v.ValidatePreset(&tooMany); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected wrapped ErrInvalidRequest, got %v", err)
	}
}

func TestValidateTarget_Kinds(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	pg := &domain.TargetConfig{Name: "p1", Kind: "postgres", DSN: "postgres://u:p@localhost/db", Schema: "reports"}
	if err := v.ValidateTarget(pg); err != nil {
		t.Fatalf("expected postgres target valid, got %v", err)
	}

	sqliteBad := &domain.TargetConfig{Name: "s1", Kind: "sqlite", DSN: "/tmp/x.db", Schema: "main"}
	if err := v.ValidateTarget(sqliteBad); err == nil {
		t.Fatal("expected sqlite schema field to be rejected")
	}

	es := &domain.TargetConfig{Name: "e1", Kind: "elasticsearch", DSN: "http://localhost:9200"}
	if err := v.ValidateTarget(es); err == nil {
		t.Fatal("expected unsupported kind error")
	}
}

func TestValidateExport(t *testing.T) {
	v := NewValidator(registry.DefaultGeneratorRegistry())
	if err := v.ValidateExport("vendas", "create", 500); err != nil {
		t.Fatalf("expected valid export, got %v", err)
	}
	if err := v.ValidateExport("select", "create", 500); err == nil {
		t.Fatal("expected reserved table name to be rejected")
	}
	if err := v.ValidateExport("vendas", "replace", 500); err == nil {
		t.Fatal("expected unknown mode to be rejected")
	}
	if err := v.ValidateExport("vendas", "append", 0); err == nil {
		t.Fatal("expected zero batch size to be rejected")
	}
}
