package broom

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedKind   = errors.New("unsupported result kind")
	ErrMalformedInput    = errors.New("malformed input")
	ErrMalformedResult   = errors.New("malformed result")
	ErrSchemaMismatch    = errors.New("schema mismatch")
	ErrColumnCollision   = errors.New("column collision")
	ErrDuplicateAdapter  = errors.New("duplicate adapter")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrUnsupportedView   = errors.New("unsupported view")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// View selects which slice of a fit result to extract.
type View string

const (
	ViewSummary    View = "summary"
	ViewParameters View = "parameters"
	ViewPointwise  View = "pointwise"
)

var allViews = []View{ViewSummary, ViewParameters, ViewPointwise}

// String returns the view name.
func (v View) String() string { return string(v) }

// Views returns all supported views.
func Views() []View {
	out := make([]View, len(allViews))
	copy(out, allViews)
	return out
}

// ParseView parses a view string.
func ParseView(s string) (View, error) {
	for _, v := range allViews {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedView, s)
}

type config struct {
	registry        *Registry
	skipUnsupported bool
}

// Option configures an extraction.
type Option func(*config)

// SkipUnsupported makes the walker skip leaf objects matched by no adapter
// instead of failing the whole conversion. Skipped leaves contribute zero
// rows.
func SkipUnsupported() Option {
	return func(c *config) { c.skipUnsupported = true }
}

// WithRegistry resolves adapters against r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.registry = r }
}

// Extract walks input and returns the requested view as a single table.
//
// Input may be a single result object, a slice/array, a map, an
// iter.Seq[any], or any nesting of those; see the package documentation for
// the path columns nested inputs gain.
func Extract(input any, v View, opts ...Option) (*Table, error) {
	switch v {
	case ViewSummary, ViewParameters, ViewPointwise:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedView, v)
	}
	cfg := config{registry: defaultRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}
	w := walker{reg: cfg.registry, skip: cfg.skipUnsupported}
	return w.walk(input, v, 0, "input")
}

// Summary extracts one row of fit-level statistics per result.
func Summary(input any, opts ...Option) (*Table, error) {
	return Extract(input, ViewSummary, opts...)
}

// Parameters extracts one row per fitted parameter.
func Parameters(input any, opts ...Option) (*Table, error) {
	return Extract(input, ViewParameters, opts...)
}

// Pointwise extracts one row per data sample.
func Pointwise(input any, opts ...Option) (*Table, error) {
	return Extract(input, ViewPointwise, opts...)
}
