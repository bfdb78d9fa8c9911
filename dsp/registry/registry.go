package registry

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
)

// Factory builds a processor from parameters.
type Factory func(p Params) (proc.Processor, error)

// RestoreFunc rebuilds a processor from its configuration record.
type RestoreFunc func(cfg proc.Config) (proc.Processor, error)

var (
	// ErrUnknownType is returned for a name or kind nothing was registered
	// under.
	ErrUnknownType = errors.New("registry: unknown processor type")

	errDuplicateType = errors.New("registry: duplicate processor type")
)

// Registry maps processor names to factories and kinds to restore
// functions. Register everything before sharing a Registry; lookups may
// then run concurrently, registration may not.
type Registry struct {
	factories map[string]Factory
	restorers map[proc.Kind]RestoreFunc
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		restorers: make(map[proc.Kind]RestoreFunc),
	}
}

// Register adds a factory for the given name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("registry: empty processor type")
	}

	if factory == nil {
		return errors.New("registry: nil factory")
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", errDuplicateType, name)
	}

	r.factories[name] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err.Error())
	}
}

// RegisterRestore adds a restore function for records tagged with k,
// replacing any previous one.
func (r *Registry) RegisterRestore(k proc.Kind, fn RestoreFunc) {
	r.restorers[k] = fn
}

// Lookup returns the factory for the given name, or nil.
func (r *Registry) Lookup(name string) Factory {
	return r.factories[name]
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Kinds returns the kinds that can be restored, ordered by role, mapper
// type and sub-type.
func (r *Registry) Kinds() []proc.Kind {
	kinds := make([]proc.Kind, 0, len(r.restorers))
	for k := range r.restorers {
		kinds = append(kinds, k)
	}

	slices.SortFunc(kinds, func(a, b proc.Kind) int {
		if a.Role != b.Role {
			return int(a.Role) - int(b.Role)
		}
		if a.Mapper != b.Mapper {
			return int(a.Mapper) - int(b.Mapper)
		}
		return int(a.Sub) - int(b.Sub)
	})

	return kinds
}

// Build creates the processor named by p.Type.
func (r *Registry) Build(p Params) (proc.Processor, error) {
	factory := r.Lookup(p.Type)
	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, p.Type)
	}

	out, err := factory(p)
	if err != nil {
		return nil, fmt.Errorf("registry: build %s: %w", p.Type, err)
	}

	return out, nil
}

// Restore rebuilds the processor a record was taken from.
func (r *Registry) Restore(cfg proc.Config) (proc.Processor, error) {
	fn, ok := r.restorers[cfg.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, cfg.Kind())
	}

	return fn(cfg)
}
