package generators

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/mmrzaf/fixturegen/internal/domain"
)

// UniformIntGenerator draws from the half-open range [min, max).
type UniformIntGenerator struct{}

func (g *UniformIntGenerator) Validate(spec domain.GeneratorSpec, kind domain.Kind) error {
	if kind != domain.KindInt {
		return fmt.Errorf("uniform_int cannot fill a %s column", kind)
	}
	if spec.Params == nil {
		return errors.New("uniform_int requires 'min' and 'max' params")
	}
	_, hasMin := spec.Params["min"]
	_, hasMax := spec.Params["max"]
	if !hasMin || !hasMax {
		return errors.New("uniform_int requires 'min' and 'max' params")
	}
	return nil
}

func (g *UniformIntGenerator) Generate(rng *rand.Rand, params map[string]interface{}, ctx GeneratorContext) (interface{}, error) {
	minVal, ok := params["min"]
	if !ok {
		return nil, errors.New("missing 'min' param")
	}
	maxVal, ok := params["max"]
	if !ok {
		return nil, errors.New("missing 'max' param")
	}

	min := toInt64(minVal)
	max := toInt64(maxVal)

	if max <= min {
		return nil, fmt.Errorf("max (%d) must be greater than min (%d)", max, min)
	}

	return min + rng.Int64N(max-min), nil
}

func toInt64(v interface{}) int64 {
	switch val := v.(type) {
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case int64:
		return val
	case float64:
		return int64(val)
	default:
		return 0
	}
}
