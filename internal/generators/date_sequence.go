package generators

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/timeutil"
)

// DateSequenceGenerator yields start + rowIndex*step. It never touches rng.
type DateSequenceGenerator struct{}

func (g *DateSequenceGenerator) Validate(spec domain.GeneratorSpec, kind domain.Kind) error {
	if kind != domain.KindDate {
		return fmt.Errorf("date_sequence cannot fill a %s column", kind)
	}
	if spec.Params == nil {
		return errors.New("date_sequence requires 'start' and 'step' params")
	}
	_, hasStart := spec.Params["start"]
	_, hasStep := spec.Params["step"]
	if !hasStart || !hasStep {
		return errors.New("date_sequence requires 'start' and 'step' params")
	}
	return nil
}

func (g *DateSequenceGenerator) Generate(_ *rand.Rand, params map[string]interface{}, ctx GeneratorContext) (interface{}, error) {
	startRaw, ok := params["start"]
	if !ok {
		return nil, errors.New("missing 'start' param")
	}
	stepRaw, ok := params["step"]
	if !ok {
		return nil, errors.New("missing 'step' param")
	}

	startStr, ok := startRaw.(string)
	if !ok {
		return nil, errors.New("'start' must be a string")
	}

	stepStr, ok := stepRaw.(string)
	if !ok {
		return nil, errors.New("'step' must be a string")
	}

	start, err := timeutil.ParseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	step, err := timeutil.ParseDuration(stepStr)
	if err != nil {
		return nil, fmt.Errorf("invalid step duration: %w", err)
	}
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %s", stepStr)
	}

	return start.Add(time.Duration(ctx.RowIndex) * step), nil
}
