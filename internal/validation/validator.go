package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/registry"
)

type Validator struct {
	genRegistry *registry.GeneratorRegistry
}

func NewValidator(genRegistry *registry.GeneratorRegistry) *Validator {
	return &Validator{genRegistry: genRegistry}
}

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	presetIDRe    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

// IsValidPresetID accepts file-name safe ids only, so an id can never
// escape the presets directory.
func IsValidPresetID(s string) bool {
	return presetIDRe.MatchString(s)
}

// ValidateRequest checks the row bounds and resolves the selector. All
// failures wrap domain.ErrInvalidRequest. On success the request's
// category and subcategory are rewritten to their canonical spelling.
func (v *Validator) ValidateRequest(req *domain.GenerationRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", domain.ErrInvalidRequest)
	}
	if req.Rows < domain.MinRows || req.Rows > domain.MaxRows {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d",
			domain.ErrInvalidRequest, domain.MinRows, domain.MaxRows, req.Rows)
	}

	sel, _, err := v.genRegistry.Resolve(req.Category, req.Subcategory)
	if err != nil {
		return err
	}
	req.Category = sel.Category
	req.Subcategory = sel.Subcategory
	return nil
}

func (v *Validator) ValidatePreset(p *domain.Preset) error {
	if p.ID == "" {
		return errors.New("preset id is required")
	}
	if !IsValidPresetID(p.ID) {
		return fmt.Errorf("invalid preset id: %s", p.ID)
	}
	if p.Name == "" {
		return errors.New("preset name is required")
	}
	if err := v.ValidateRequest(&p.GenerationRequest); err != nil {
		return fmt.Errorf("preset '%s': %w", p.ID, err)
	}
	return nil
}

func (v *Validator) ValidateTarget(t *domain.TargetConfig) error {
	if t.Name == "" {
		return errors.New("target name is required")
	}
	if t.Kind == "" {
		return errors.New("target kind is required")
	}
	if t.DSN == "" {
		return errors.New("target dsn is required")
	}
	if t.Database != "" && !IsValidIdentifier(t.Database) {
		return fmt.Errorf("invalid target database identifier: %s", t.Database)
	}

	switch t.Kind {
	case "postgres":
		if t.Schema != "" && !IsValidIdentifier(t.Schema) {
			return fmt.Errorf("invalid target schema identifier: %s", t.Schema)
		}
	case "sqlite":
		if t.Schema != "" {
			return fmt.Errorf("%s targets must not set schema", t.Kind)
		}
		if t.Database != "" {
			return errors.New("sqlite targets must not set database")
		}
	default:
		return fmt.Errorf("unsupported target kind: %s", t.Kind)
	}

	return nil
}

// ValidateExport checks the sink-side parameters of an export.
func (v *Validator) ValidateExport(table, mode string, batchSize int) error {
	if !IsValidIdentifier(table) {
		return fmt.Errorf("invalid table identifier: %s", table)
	}
	if mode == "" {
		return errors.New("mode is required")
	}
	if !IsValidMode(mode) {
		return fmt.Errorf("invalid mode: %s", mode)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be > 0, got %d", batchSize)
	}
	return nil
}

func IsValidMode(mode string) bool {
	switch mode {
	case domain.TableModeCreate, domain.TableModeTruncate, domain.TableModeAppend:
		return true
	default:
		return false
	}
}
