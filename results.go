package broom

// Param describes one fitted parameter.
type Param struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
	// Vary reports whether the parameter was varied during optimization;
	// false means it was held fixed.
	Vary bool
	// Expr is the constraint expression for a derived parameter, empty
	// when the parameter is free.
	Expr string
	// Stderr is the standard error of the fitted value, nil when the fit
	// reports no uncertainty.
	Stderr *float64
	// Init is the value before optimization, nil for derived parameters
	// that have none.
	Init *float64
}

// MinimizerResult is the outcome of a scalar minimization. It carries
// summary statistics and parameters but no pointwise data, because a bare
// minimization has no independent variable.
type MinimizerResult struct {
	Method  string
	NVarys  int
	NData   int
	NFev    int
	Chisqr  float64
	RedChi  float64
	AIC     float64
	BIC     float64
	Success bool
	Message string
	Params  []Param
}

// Component is one named term of an additive composite model, evaluated at
// the fit's sample points.
type Component struct {
	Name string
	Eval []float64
}

// ModelResult is the outcome of fitting a model to sampled data. On top of
// the minimization outcome it records the sample points, the observed data,
// the best-fit curve, residuals, and optionally the per-component
// evaluations of a composite model.
type ModelResult struct {
	MinimizerResult
	Model    string
	X        []float64
	Data     []float64
	BestFit  []float64
	Residual []float64
	// Components holds the evaluated terms of a composite model. They
	// surface as extra pointwise columns only when there is more than one
	// component; a single-component model adds nothing over BestFit.
	Components []Component
}
