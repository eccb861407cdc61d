package scenario

import (
	"fmt"

	"github.com/katalvlaran/outbreak/growth"
	"github.com/katalvlaran/outbreak/herd"
)

// CalculatorView is the herd-immunity calculator page.
type CalculatorView struct {
	Disease  string
	R0       float64
	Coverage float64
	Metrics  herd.Result
	// MeetsThreshold is true when coverage reaches the threshold (or none applies).
	MeetsThreshold bool
	// Gap is the missing coverage; GapApplies is false when R0 ≤ 1.
	Gap        float64
	GapApplies bool
}

// Calculator computes the herd-immunity calculator view.
func Calculator(p Params) (CalculatorView, error) {
	res, err := herd.ComputeMetrics(p.R0, p.Coverage)
	if err != nil {
		return CalculatorView{}, fmt.Errorf("calculator: %w", err)
	}
	gap, ok := res.CoverageGap(p.Coverage)
	return CalculatorView{
		Disease:        p.Disease,
		R0:             p.R0,
		Coverage:       p.Coverage,
		Metrics:        res,
		MeetsThreshold: res.MeetsThreshold(p.Coverage),
		Gap:            gap,
		GapApplies:     ok,
	}, nil
}

// SpreadView is the unvaccinated exponential-spread chart.
type SpreadView struct {
	Disease string
	R0      float64
	Series  growth.Series
}

// Spread grows one case at Re = R0 for p.Generations generations.
func Spread(p Params) (SpreadView, error) {
	s, err := growth.GenerateSeries(p.R0, p.Generations)
	if err != nil {
		return SpreadView{}, fmt.Errorf("spread: %w", err)
	}
	return SpreadView{Disease: p.Disease, R0: p.R0, Series: s}, nil
}

// ImpactView compares an unvaccinated and a vaccinated curve.
type ImpactView struct {
	Disease      string
	R0           float64
	Coverage     float64
	Metrics      herd.Result
	Unvaccinated growth.Series
	Vaccinated   growth.Series
	// Averted is the cumulative number of infections the coverage prevents.
	Averted float64
	// Reduction is Averted as a fraction of the unvaccinated cumulative total.
	Reduction float64
}

// Impact runs two independent series with the same generations and seed:
// one at Re = R0 and one at Re = R0*(1-coverage).
func Impact(p Params) (ImpactView, error) {
	res, err := herd.ComputeMetrics(p.R0, p.Coverage)
	if err != nil {
		return ImpactView{}, fmt.Errorf("impact: %w", err)
	}
	noVax, err := growth.GenerateSeries(p.R0, p.Generations)
	if err != nil {
		return ImpactView{}, fmt.Errorf("impact: unvaccinated: %w", err)
	}
	vax, err := growth.GenerateSeries(res.Re, p.Generations)
	if err != nil {
		return ImpactView{}, fmt.Errorf("impact: vaccinated: %w", err)
	}

	total := noVax.Cumulative()
	averted := total - vax.Cumulative()
	v := ImpactView{
		Disease:      p.Disease,
		R0:           p.R0,
		Coverage:     p.Coverage,
		Metrics:      res,
		Unvaccinated: noVax,
		Vaccinated:   vax,
		Averted:      averted,
	}
	if total > 0 {
		v.Reduction = averted / total
	}
	return v, nil
}
