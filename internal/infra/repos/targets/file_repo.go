package targets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmrzaf/bizgen/internal/domain"
	"gopkg.in/yaml.v3"
)

type Repository interface {
	List() ([]*domain.TargetConfig, error)
	Get(id string) (*domain.TargetConfig, error)
	GetByPath(path string) (*domain.TargetConfig, error)
}

// FileRepository reads one target per YAML or JSON file. The id defaults to
// the file name and ${VAR} references in dsn and database are expanded from
// the environment, so credentials stay out of the files.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

// List returns the targets sorted by id. Files that fail to parse, or that
// carry unknown keys, are skipped.
func (r *FileRepository) List() ([]*domain.TargetConfig, error) {
	entries, err := os.ReadDir(r.baseDir)
	if os.IsNotExist(err) {
		return []*domain.TargetConfig{}, nil
	}
	if err != nil {
		return nil, err
	}

	list := make([]*domain.TargetConfig, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isTargetFile(entry.Name()) {
			continue
		}
		t, err := r.loadTarget(filepath.Join(r.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		list = append(list, t)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Get matches id exactly, then falls back to a case-insensitive name match.
func (r *FileRepository) Get(id string) (*domain.TargetConfig, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, t := range list {
		if t.ID == id {
			return t, nil
		}
	}
	for _, t := range list {
		if strings.EqualFold(t.Name, id) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("target not found: %s", id)
}

func (r *FileRepository) GetByPath(path string) (*domain.TargetConfig, error) {
	return r.loadTarget(path)
}

func (r *FileRepository) loadTarget(path string) (*domain.TargetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t domain.TargetConfig
	if err := decodeStrict(data, filepath.Ext(path), &t); err != nil {
		return nil, fmt.Errorf("failed to parse target %s: %w", filepath.Base(path), err)
	}

	if t.ID == "" {
		t.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	t.DSN = os.ExpandEnv(t.DSN)
	t.Database = os.ExpandEnv(t.Database)
	return &t, nil
}

func decodeStrict(data []byte, ext string, v any) error {
	if ext == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

func isTargetFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
