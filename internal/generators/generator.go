package generators

import (
	"math/rand/v2"

	"github.com/mmrzaf/fixturegen/internal/domain"
)

// Generator produces one column value per call. Implementations that need
// randomness must draw only from rng so that a seeded run is reproducible.
type Generator interface {
	Generate(rng *rand.Rand, params map[string]interface{}, ctx GeneratorContext) (interface{}, error)
	Validate(spec domain.GeneratorSpec, kind domain.Kind) error
}

type GeneratorContext struct {
	RowIndex int64
}
