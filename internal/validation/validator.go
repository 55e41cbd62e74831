package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/registry"
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

// ValidatePlan checks that plan fills every catalogue column exactly once,
// in catalogue order, with a generator that accepts the column kind.
func (v *Validator) ValidatePlan(plan []domain.ColumnPlan) error {
	if len(plan) != len(domain.Columns) {
		return fmt.Errorf("plan has %d columns, want %d", len(plan), len(domain.Columns))
	}

	for i, cp := range plan {
		if cp.Column != domain.Columns[i] {
			return fmt.Errorf("plan column %d is '%s', want '%s'", i, cp.Column.Name, domain.Columns[i].Name)
		}
		if cp.Generator.Type == "" {
			return fmt.Errorf("column '%s': generator type is required", cp.Column.Name)
		}

		gen, err := v.genRegistry.Get(cp.Generator.Type)
		if err != nil {
			return fmt.Errorf("column '%s': %w", cp.Column.Name, err)
		}
		if err := gen.Validate(cp.Generator, cp.Column.Kind); err != nil {
			return fmt.Errorf("column '%s': generator validation failed: %w", cp.Column.Name, err)
		}
	}

	return nil
}

// ValidateTableConfig checks the sidecar against the column catalogue: the
// column_types keys equal the table's columns and each tag matches.
func ValidateTableConfig(cfg *domain.TableConfig) error {
	if cfg.TableName == "" {
		return errors.New("table_name is required")
	}
	if !IsValidIdentifier(cfg.TableName) {
		return fmt.Errorf("invalid table_name identifier: %s", cfg.TableName)
	}
	if cfg.BaseName == "" {
		return errors.New("base_name is required")
	}
	if strings.ContainsAny(cfg.BaseName, `/\`) || cfg.BaseName == "." || cfg.BaseName == ".." {
		return fmt.Errorf("base_name must be a single path element: %s", cfg.BaseName)
	}

	types := cfg.ColumnTypes.ByName()
	for _, col := range domain.Columns {
		got, ok := types[col.Name]
		if !ok {
			return fmt.Errorf("column_types is missing column '%s'", col.Name)
		}
		if !got.Valid() {
			return fmt.Errorf("column '%s': invalid column type '%s'", col.Name, got)
		}
		if got != col.Type {
			return fmt.Errorf("column '%s': column type '%s', want '%s'", col.Name, got, col.Type)
		}
	}

	return nil
}

func ValidateExportTarget(t *domain.ExportTarget) error {
	if t.Kind == "" {
		return errors.New("target kind is required")
	}
	if t.DSN == "" {
		return errors.New("target dsn is required")
	}
	if !IsValidIdentifier(t.Table) {
		return fmt.Errorf("invalid target table identifier: %s", t.Table)
	}
	if !domain.IsValidTableMode(t.Mode) {
		return fmt.Errorf("invalid mode: %s", t.Mode)
	}

	switch t.Kind {
	case domain.TargetKindPostgres:
		if t.Schema != "" && !IsValidIdentifier(t.Schema) {
			return fmt.Errorf("invalid target schema identifier: %s", t.Schema)
		}
	case domain.TargetKindSQLite:
		if t.Schema != "" {
			return fmt.Errorf("%s targets must not set schema", t.Kind)
		}
	default:
		return fmt.Errorf("unsupported target kind: %s", t.Kind)
	}

	return nil
}
