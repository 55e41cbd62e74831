package exec

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/generators"
	"github.com/mmrzaf/fixturegen/internal/registry"
)

const (
	SampleSeed = 42
	SampleRows = 10
)

var educationLevels = []interface{}{"High School", "Bachelor", "Master", "PhD"}

// SamplePlan lists the column plans in draw order. Every random column is
// filled completely before the next one starts, so reordering the plan
// changes every value drawn after the moved column.
func SamplePlan() []domain.ColumnPlan {
	return []domain.ColumnPlan{
		{
			Column:    domain.Columns[0],
			Generator: domain.GeneratorSpec{Type: registry.UniformInt, Params: map[string]interface{}{"min": 18, "max": 90}},
		},
		{
			Column:    domain.Columns[1],
			Generator: domain.GeneratorSpec{Type: registry.UniformInt, Params: map[string]interface{}{"min": 20000, "max": 100000}},
		},
		{
			Column:    domain.Columns[2],
			Generator: domain.GeneratorSpec{Type: registry.Choice, Params: map[string]interface{}{"values": educationLevels}},
		},
		{
			Column:    domain.Columns[3],
			Generator: domain.GeneratorSpec{Type: registry.Choice, Params: map[string]interface{}{"values": []interface{}{true, false}}},
		},
		{
			Column:    domain.Columns[4],
			Generator: domain.GeneratorSpec{Type: registry.DateSequence, Params: map[string]interface{}{"start": "2020-01-01", "step": "1d"}},
		},
	}
}

// NewRand returns the generator's random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

type Executor struct {
	genRegistry *registry.GeneratorRegistry
}

func NewExecutor(genRegistry *registry.GeneratorRegistry) *Executor {
	return &Executor{genRegistry: genRegistry}
}

// Generate builds a table of rows records from plan using one random source
// seeded with seed.
func (e *Executor) Generate(plan []domain.ColumnPlan, seed int64, rows int) (*domain.Table, *domain.RunStats, error) {
	if rows < 0 {
		return nil, nil, fmt.Errorf("rows must be >= 0, got %d", rows)
	}
	startTime := time.Now()

	rng := NewRand(seed)
	table := &domain.Table{Records: make([]domain.Record, rows)}

	for _, cp := range plan {
		gen, err := e.genRegistry.Get(cp.Generator.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("column '%s': %w", cp.Column.Name, err)
		}
		if err := gen.Validate(cp.Generator, cp.Column.Kind); err != nil {
			return nil, nil, fmt.Errorf("column '%s': generator validation failed: %w", cp.Column.Name, err)
		}

		for rowIdx := 0; rowIdx < rows; rowIdx++ {
			ctx := generators.GeneratorContext{RowIndex: int64(rowIdx)}
			val, err := gen.Generate(rng, cp.Generator.Params, ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("column '%s', row %d: %w", cp.Column.Name, rowIdx, err)
			}
			if err := assign(&table.Records[rowIdx], cp.Column.Name, val); err != nil {
				return nil, nil, fmt.Errorf("column '%s', row %d: %w", cp.Column.Name, rowIdx, err)
			}
		}
	}

	stats := &domain.RunStats{
		Seed:            seed,
		TotalRows:       int64(rows),
		DurationSeconds: time.Since(startTime).Seconds(),
	}
	return table, stats, nil
}

// GenerateSample produces the fixed sample table.
func (e *Executor) GenerateSample() (*domain.Table, *domain.RunStats, error) {
	return e.Generate(SamplePlan(), SampleSeed, SampleRows)
}

func assign(rec *domain.Record, column string, val interface{}) error {
	var ok bool
	switch column {
	case domain.ColumnAge:
		rec.Age, ok = val.(int64)
	case domain.ColumnIncome:
		rec.Income, ok = val.(int64)
	case domain.ColumnEducation:
		rec.Education, ok = val.(string)
	case domain.ColumnEmployed:
		rec.Employed, ok = val.(bool)
	case domain.ColumnJoinDate:
		rec.JoinDate, ok = val.(time.Time)
	default:
		return errors.New("unknown column")
	}
	if !ok {
		return fmt.Errorf("unexpected value type %T", val)
	}
	return nil
}
