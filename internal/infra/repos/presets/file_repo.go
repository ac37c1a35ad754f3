package presets

import (
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
	List() ([]*domain.Preset, error)
	Get(id string) (*domain.Preset, error)
	GetByPath(path string) (*domain.Preset, error)
}

// FileRepository reads presets from YAML or JSON files in one directory.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) List() ([]*domain.Preset, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.Preset{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}

	presets := make([]*domain.Preset, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isPresetFile(entry.Name()) {
			continue
		}

		path := filepath.Join(r.baseDir, entry.Name())
		preset, err := r.loadPreset(path)
		if err != nil {
			continue
		}
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, nil
}

func (r *FileRepository) Get(id string) (*domain.Preset, error) {
	presets, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, p := range presets {
		if p.ID == id || p.Name == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("preset not found: %s", id)
}

// GetByPath loads a preset file. Relative paths resolve against the base
// directory and no path may point outside it.
func (r *FileRepository) GetByPath(path string) (*domain.Preset, error) {
	resolved, err := r.resolvePath(path)
	if err != nil {
		return nil, err
	}
	return r.loadPreset(resolved)
}

func (r *FileRepository) resolvePath(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("preset path escapes %s: %s", r.baseDir, path)
	}
	return path, nil
}

func (r *FileRepository) loadPreset(path string) (*domain.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var preset domain.Preset
	ext := filepath.Ext(path)

	if ext == ".json" {
		err = json.Unmarshal(data, &preset)
	} else {
		err = yaml.Unmarshal(data, &preset)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", filepath.Base(path), err)
	}

	if preset.ID == "" {
		preset.ID = strings.TrimSuffix(filepath.Base(path), ext)
	}
	if preset.Name == "" {
		preset.Name = preset.ID
	}

	return &preset, nil
}

func isPresetFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
