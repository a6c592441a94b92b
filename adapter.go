package broom

import "fmt"

// Adapter recognizes one kind of fit result. An adapter alone only
// identifies objects; it unlocks extraction by additionally implementing
// [Summarizer], [Parameterizer], or [Pointwiser]. Adapters must be stateless
// and must never mutate the objects they are given.
type Adapter interface {
	// Name identifies the adapter. Names are unique within a registry.
	Name() string
	// Recognize reports whether obj is the result kind this adapter
	// handles. It must be a total, side-effect-free predicate.
	Recognize(obj any) bool
}

// Summarizer extracts fit-level scalars: a single-row table per result.
type Summarizer interface {
	Summary(obj any) (*Table, error)
}

// Parameterizer extracts one row per fitted parameter.
type Parameterizer interface {
	Parameters(obj any) (*Table, error)
}

// Pointwiser extracts one row per independent-variable sample.
type Pointwiser interface {
	Pointwise(obj any) (*Table, error)
}

// Registry holds adapters in registration order and resolves objects to the
// first adapter that recognizes them. A registry is read-only after setup,
// so concurrent resolution needs no synchronization; Register itself is not
// safe for concurrent use and belongs in program initialization.
type Registry struct {
	adapters []Adapter
	names    map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]bool)}
}

// Register appends an adapter. Reusing a name is an error.
func (r *Registry) Register(a Adapter) error {
	if r.names[a.Name()] {
		return fmt.Errorf("%w: %q", ErrDuplicateAdapter, a.Name())
	}
	r.names[a.Name()] = true
	r.adapters = append(r.adapters, a)
	return nil
}

// Resolve returns the first registered adapter whose Recognize reports true
// for obj, or ErrUnsupportedKind when none does.
func (r *Registry) Resolve(obj any) (Adapter, error) {
	for _, a := range r.adapters {
		if a.Recognize(obj) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, obj)
}

var defaultRegistry = NewRegistry()

// Register adds an adapter to the default registry used by [Extract] and the
// view functions. Call it during program initialization.
func Register(a Adapter) error {
	return defaultRegistry.Register(a)
}

func init() {
	for _, a := range []Adapter{modelAdapter{}, minimizerAdapter{}} {
		if err := defaultRegistry.Register(a); err != nil {
			panic(err)
		}
	}
}

// extract dispatches the requested view on a resolved adapter. A view the
// adapter does not implement yields an empty table, not an error, so
// mixed-kind collections can coexist.
func extract(a Adapter, obj any, v View) (*Table, error) {
	switch v {
	case ViewSummary:
		if s, ok := a.(Summarizer); ok {
			return s.Summary(obj)
		}
	case ViewParameters:
		if p, ok := a.(Parameterizer); ok {
			return p.Parameters(obj)
		}
	case ViewPointwise:
		if p, ok := a.(Pointwiser); ok {
			return p.Pointwise(obj)
		}
	}
	return NewTable(), nil
}
