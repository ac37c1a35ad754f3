package presets

import (
	"os"
	"path/filepath"
	"testing"
)

const salesPreset = `id: vendas_anual
name: Vendas do ano
category: Vendas
rows: 250
seed: 42
today: "2024-06-15"
`

func TestGetByPath_RejectsPathTraversal(t *testing.T) {
	base := t.TempDir()
	repo := NewFileRepository(base)

	inside := filepath.Join(base, "ok.yaml")
	if err := os.WriteFile(inside, []byte(salesPreset), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByPath("ok.yaml"); err != nil {
		t.Fatalf("expected preset load inside base dir, got %v", err)
	}
	if _, err := repo.GetByPath(inside); err != nil {
		t.Fatalf("expected absolute path inside base dir to load, got %v", err)
	}

	outsideFile := filepath.Join(t.TempDir(), "outside.yaml")
	if err := os.WriteFile(outsideFile, []byte("id: bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByPath(outsideFile); err == nil {
		t.Fatal("expected traversal rejection for outside absolute path")
	}
	if _, err := repo.GetByPath("../outside.yaml"); err == nil {
		t.Fatal("expected traversal rejection for relative path escape")
	}
}

func TestListAndGet(t *testing.T) {
	base := t.TempDir()
	files := map[string]string{
		"vendas.yaml":     salesPreset,
		"transporte.json": `{"name": "Frota", "category": "Logística", "subcategory": "Transporte", "rows": 50}`,
		"notes.txt":       "ignored",
		"broken.yaml":     "category: [unterminated",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(base, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	repo := NewFileRepository(base)
	list, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(list))
	}
	if list[0].ID != "transporte" || list[1].ID != "vendas_anual" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}

	p, err := repo.Get("vendas_anual")
	if err != nil {
		t.Fatal(err)
	}
	if p.Category != "Vendas" || p.Rows != 250 || p.Seed == nil || *p.Seed != 42 || p.Today != "2024-06-15" {
		t.Fatalf("unexpected preset %#v", p)
	}

	byName, err := repo.Get("Frota")
	if err != nil {
		t.Fatal(err)
	}
	if byName.Subcategory != "Transporte" || byName.Rows != 50 {
		t.Fatalf("unexpected preset %#v", byName)
	}

	if _, err := repo.Get("missing"); err == nil {
		t.Fatal("expected not found")
	}
}

func TestListMissingDir(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope"))
	list, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}
