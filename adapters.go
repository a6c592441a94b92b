package broom

import (
	"fmt"
	"slices"
)

// Column orders produced by the built-in adapters.
var (
	summaryColumns = []string{
		"method", "num_params", "num_data_points", "chisqr", "redchi",
		"AIC", "BIC", "num_func_eval", "success", "message",
	}
	parameterColumns = []string{
		"name", "value", "min", "max", "vary", "expr", "stderr", "init_value",
	}
	pointwiseColumns = []string{"x", "data", "best_fit", "residual"}
)

// minimizerAdapter handles [MinimizerResult]. No pointwise capability: a
// bare minimization carries no independent variable.
type minimizerAdapter struct{}

func (minimizerAdapter) Name() string { return "minimizer" }

func (minimizerAdapter) Recognize(obj any) bool {
	switch obj.(type) {
	case MinimizerResult, *MinimizerResult:
		return true
	}
	return false
}

func (minimizerAdapter) Summary(obj any) (*Table, error) {
	r, err := minimizerOf(obj)
	if err != nil {
		return nil, err
	}
	t := NewTable(summaryColumns...)
	t.Append(summaryRow(r))
	return t, nil
}

func (minimizerAdapter) Parameters(obj any) (*Table, error) {
	r, err := minimizerOf(obj)
	if err != nil {
		return nil, err
	}
	return parameterTable(r.Params), nil
}

func minimizerOf(obj any) (*MinimizerResult, error) {
	switch r := obj.(type) {
	case MinimizerResult:
		return &r, nil
	case *MinimizerResult:
		return r, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, obj)
}

// modelAdapter handles [ModelResult] and implements all three views.
type modelAdapter struct{}

func (modelAdapter) Name() string { return "model" }

func (modelAdapter) Recognize(obj any) bool {
	switch obj.(type) {
	case ModelResult, *ModelResult:
		return true
	}
	return false
}

func (modelAdapter) Summary(obj any) (*Table, error) {
	r, err := modelOf(obj)
	if err != nil {
		return nil, err
	}
	t := NewTable(append([]string{"model"}, summaryColumns...)...)
	row := summaryRow(&r.MinimizerResult)
	row["model"] = r.Model
	t.Append(row)
	return t, nil
}

func (modelAdapter) Parameters(obj any) (*Table, error) {
	r, err := modelOf(obj)
	if err != nil {
		return nil, err
	}
	return parameterTable(r.Params), nil
}

func (modelAdapter) Pointwise(obj any) (*Table, error) {
	r, err := modelOf(obj)
	if err != nil {
		return nil, err
	}
	n := len(r.X)
	for _, s := range []struct {
		name   string
		series []float64
	}{
		{"Data", r.Data}, {"BestFit", r.BestFit}, {"Residual", r.Residual},
	} {
		if s.series != nil && len(s.series) != n {
			return nil, fmt.Errorf("%w: %s has %d samples, X has %d",
				ErrMalformedResult, s.name, len(s.series), n)
		}
	}
	cols := slices.Clone(pointwiseColumns)
	multi := len(r.Components) > 1
	if multi {
		for _, c := range r.Components {
			if len(c.Eval) != n {
				return nil, fmt.Errorf("%w: component %q has %d samples, X has %d",
					ErrMalformedResult, c.Name, len(c.Eval), n)
			}
			if slices.Contains(pointwiseColumns, c.Name) {
				return nil, fmt.Errorf("%w: component name %q shadows a pointwise column",
					ErrColumnCollision, c.Name)
			}
			cols = append(cols, c.Name)
		}
	}
	t := NewTable(cols...)
	for i := range n {
		row := Row{
			"x":        r.X[i],
			"data":     seriesAt(r.Data, i),
			"best_fit": seriesAt(r.BestFit, i),
			"residual": seriesAt(r.Residual, i),
		}
		if multi {
			for _, c := range r.Components {
				row[c.Name] = c.Eval[i]
			}
		}
		t.Append(row)
	}
	return t, nil
}

func modelOf(obj any) (*ModelResult, error) {
	switch r := obj.(type) {
	case ModelResult:
		return &r, nil
	case *ModelResult:
		return r, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, obj)
}

func summaryRow(r *MinimizerResult) Row {
	return Row{
		"method":          r.Method,
		"num_params":      r.NVarys,
		"num_data_points": r.NData,
		"chisqr":          r.Chisqr,
		"redchi":          r.RedChi,
		"AIC":             r.AIC,
		"BIC":             r.BIC,
		"num_func_eval":   r.NFev,
		"success":         r.Success,
		"message":         r.Message,
	}
}

func parameterTable(params []Param) *Table {
	t := NewTable(parameterColumns...)
	for _, p := range params {
		row := Row{
			"name":       p.Name,
			"value":      p.Value,
			"min":        p.Min,
			"max":        p.Max,
			"vary":       p.Vary,
			"expr":       NA,
			"stderr":     NA,
			"init_value": NA,
		}
		if p.Expr != "" {
			row["expr"] = p.Expr
		}
		if p.Stderr != nil {
			row["stderr"] = *p.Stderr
		}
		if p.Init != nil {
			row["init_value"] = *p.Init
		}
		t.Append(row)
	}
	return t
}

// seriesAt reads one sample of an optional series; a fit that does not
// expose the series yields the absent marker, not a dropped row.
func seriesAt(s []float64, i int) any {
	if s == nil {
		return NA
	}
	return s[i]
}
