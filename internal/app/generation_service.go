package app

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/exec"
	"github.com/mmrzaf/bizgen/internal/hashing"
	"github.com/mmrzaf/bizgen/internal/infra/repos/presets"
	"github.com/mmrzaf/bizgen/internal/infra/repos/targets"
	"github.com/mmrzaf/bizgen/internal/logging"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/registry"
	"github.com/mmrzaf/bizgen/internal/textutil"
	"github.com/mmrzaf/bizgen/internal/timeutil"
	"github.com/mmrzaf/bizgen/internal/validation"
)

// GenerateOptions pins the randomness and the reference date of a call.
// A nil Seed draws a fresh one; a zero Today means the current day.
type GenerateOptions struct {
	Seed  *int64
	Today time.Time
}

type ExportOptions struct {
	Database  string
	Table     string
	Mode      string
	BatchSize int
}

type GenerationService struct {
	presetRepo  presets.Repository
	targetRepo  targets.Repository
	genRegistry *registry.GeneratorRegistry
	validator   *validation.Validator
	executor    *exec.Executor
	logger      *logging.Logger
	now         func() time.Time
}

func NewGenerationService(
	presetRepo presets.Repository,
	targetRepo targets.Repository,
	genRegistry *registry.GeneratorRegistry,
	logger *logging.Logger,
) *GenerationService {
	return &GenerationService{
		presetRepo:  presetRepo,
		targetRepo:  targetRepo,
		genRegistry: genRegistry,
		validator:   validation.NewValidator(genRegistry),
		executor:    exec.NewExecutor(genRegistry),
		logger:      logger.WithComponent("generation"),
		now:         time.Now,
	}
}

func (s *GenerationService) Categories() []domain.CategoryInfo {
	return s.genRegistry.Categories()
}

// Generate builds one table for req. The returned result carries the
// canonical selector, the seed actually used and a fingerprint that
// identifies the call.
func (s *GenerationService) Generate(req domain.GenerationRequest, opts GenerateOptions) (*domain.Result, error) {
	if err := s.validator.ValidateRequest(&req); err != nil {
		s.logger.Warnw("generation.rejected", map[string]any{
			"category":    req.Category,
			"subcategory": req.Subcategory,
			"rows":        req.Rows,
			"error":       err,
		})
		return nil, err
	}

	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = generateSeed()
	}
	today := opts.Today
	if today.IsZero() {
		today = s.now().UTC()
	}
	today = timeutil.StartOfDay(today)

	fingerprint, err := hashing.HashRequest(req, seed, today)
	if err != nil {
		return nil, fmt.Errorf("failed to hash request: %w", err)
	}

	start := time.Now()
	table, err := s.executor.Generate(random.New(seed), req, today)
	if err != nil {
		s.logger.Errorw("generation.failed", map[string]any{
			"selector":    req.Selector().String(),
			"fingerprint": fingerprint,
			"error":       err,
		})
		return nil, err
	}

	res := &domain.Result{
		Request:     req,
		Seed:        seed,
		Today:       today,
		Fingerprint: fingerprint,
		Table:       table,
		Duration:    time.Since(start),
	}
	s.logger.Infow("generation.completed", map[string]any{
		"selector":    req.Selector().String(),
		"rows":        len(table.Rows),
		"seed":        seed,
		"today":       today.Format(timeutil.DateLayout),
		"fingerprint": fingerprint,
		"duration_ms": res.Duration.Milliseconds(),
	})
	return res, nil
}

// GeneratePreset runs a stored preset. Seed and today set in opts take
// precedence over the preset's own; rows > 0 overrides the preset rows.
func (s *GenerationService) GeneratePreset(id string, rows int, opts GenerateOptions) (*domain.Result, error) {
	p, err := s.presetRepo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset: %w", err)
	}
	return s.runPreset(p, rows, opts)
}

func (s *GenerationService) GeneratePresetFile(path string, rows int, opts GenerateOptions) (*domain.Result, error) {
	p, err := s.presetRepo.GetByPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset: %w", err)
	}
	return s.runPreset(p, rows, opts)
}

func (s *GenerationService) runPreset(p *domain.Preset, rows int, opts GenerateOptions) (*domain.Result, error) {
	if rows > 0 {
		p.Rows = rows
	}
	if err := s.validator.ValidatePreset(p); err != nil {
		return nil, err
	}
	if opts.Seed == nil {
		opts.Seed = p.Seed
	}
	if opts.Today.IsZero() && p.Today != "" {
		today, err := timeutil.ParseDate(p.Today, s.now())
		if err != nil {
			return nil, fmt.Errorf("preset '%s': invalid today %q: %w", p.ID, p.Today, err)
		}
		opts.Today = today
	}
	return s.Generate(p.GenerationRequest, opts)
}

// Export writes a generated table to a stored target.
func (s *GenerationService) Export(res *domain.Result, targetID string, opts ExportOptions) (*domain.ExportStats, error) {
	t, err := s.targetRepo.Get(targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target: %w", err)
	}
	return s.ExportTo(res, t, opts)
}

// ExportTo writes a generated table to an ad-hoc target. An empty table
// name defaults to DefaultTableName of the result's selector.
func (s *GenerationService) ExportTo(res *domain.Result, target *domain.TargetConfig, opts ExportOptions) (*domain.ExportStats, error) {
	if res == nil || res.Table == nil {
		return nil, fmt.Errorf("nothing to export")
	}
	if target == nil {
		return nil, fmt.Errorf("target is required")
	}
	if err := s.validator.ValidateTarget(target); err != nil {
		return nil, fmt.Errorf("target validation failed: %w", err)
	}
	if opts.Database != "" && !validation.IsValidIdentifier(opts.Database) {
		return nil, fmt.Errorf("invalid database identifier: %s", opts.Database)
	}
	if opts.Table == "" {
		opts.Table = DefaultTableName(res.Request.Selector())
	}
	if opts.Mode == "" {
		opts.Mode = domain.TableModeCreate
	}

	effective := resolveTargetForRun(target, opts.Database)
	configHash, err := hashing.HashExportConfig(res.Fingerprint, effective, opts.Table, opts.Mode, opts.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to hash export config: %w", err)
	}

	sink, err := newSink(effective)
	if err != nil {
		return nil, err
	}

	stats, err := s.executor.Export(res.Table, sink, opts.Table, opts.Mode, opts.BatchSize)
	if err != nil {
		s.logger.Errorw("export.failed", map[string]any{
			"target":      effective.Name,
			"kind":        effective.Kind,
			"dsn":         targets.RedactDSN(effective.DSN),
			"table":       opts.Table,
			"config_hash": configHash,
			"error":       err,
		})
		return nil, err
	}
	stats.ConfigHash = configHash

	s.logger.Infow("export.completed", map[string]any{
		"target":      effective.Name,
		"kind":        effective.Kind,
		"dsn":         targets.RedactDSN(effective.DSN),
		"table":       stats.Table,
		"mode":        opts.Mode,
		"rows":        stats.RowsWritten,
		"batches":     stats.Batches,
		"config_hash": configHash,
	})
	return stats, nil
}

// DefaultTableName is "<category>_<subcategory>" slugged, e.g.
// "financeiro_contas_a_receber", or just the category slug.
func DefaultTableName(sel domain.Selector) string {
	name := textutil.Slug(sel.Category)
	if sel.Subcategory != "" {
		name += "_" + textutil.Slug(sel.Subcategory)
	}
	if !validation.IsValidIdentifier(name) {
		name += "_"
	}
	return name
}

func generateSeed() int64 {
	var b [8]byte
	rand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}
