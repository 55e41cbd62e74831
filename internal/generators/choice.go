package generators

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/mmrzaf/fixturegen/internal/domain"
)

// ChoiceGenerator picks uniformly, with replacement, from a fixed list.
type ChoiceGenerator struct{}

func (g *ChoiceGenerator) Validate(spec domain.GeneratorSpec, kind domain.Kind) error {
	if spec.Params == nil {
		return errors.New("choice requires 'values' param")
	}
	valuesRaw, ok := spec.Params["values"]
	if !ok {
		return errors.New("choice requires 'values' param")
	}

	values, ok := valuesRaw.([]interface{})
	if !ok {
		return errors.New("'values' must be a list")
	}

	if len(values) == 0 {
		return errors.New("'values' cannot be empty")
	}

	for i, v := range values {
		if !matchesKind(v, kind) {
			return fmt.Errorf("value %d (%v) does not fit a %s column", i, v, kind)
		}
	}

	return nil
}

func (g *ChoiceGenerator) Generate(rng *rand.Rand, params map[string]interface{}, ctx GeneratorContext) (interface{}, error) {
	valuesRaw, ok := params["values"]
	if !ok {
		return nil, errors.New("missing 'values' param")
	}

	values, ok := valuesRaw.([]interface{})
	if !ok {
		return nil, errors.New("'values' must be a list")
	}

	if len(values) == 0 {
		return nil, errors.New("'values' cannot be empty")
	}

	return values[rng.IntN(len(values))], nil
}

func matchesKind(v interface{}, kind domain.Kind) bool {
	switch kind {
	case domain.KindString:
		_, ok := v.(string)
		return ok
	case domain.KindBool:
		_, ok := v.(bool)
		return ok
	case domain.KindInt:
		switch v.(type) {
		case int, int32, int64:
			return true
		}
		return false
	default:
		return false
	}
}
