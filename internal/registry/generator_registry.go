package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mmrzaf/fixturegen/internal/generators"
)

const (
	UniformInt   = "uniform_int"
	Choice       = "choice"
	DateSequence = "date_sequence"
)

type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[string]generators.Generator
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[string]generators.Generator),
	}
}

func (r *GeneratorRegistry) Register(name string, gen generators.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[name] = gen
}

func (r *GeneratorRegistry) Get(name string) (generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("generator not found: %s", name)
	}
	return gen, nil
}

// Names returns the registered generator names in sorted order.
func (r *GeneratorRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r := NewGeneratorRegistry()
	r.Register(UniformInt, &generators.UniformIntGenerator{})
	r.Register(Choice, &generators.ChoiceGenerator{})
	r.Register(DateSequence, &generators.DateSequenceGenerator{})
	return r
}
