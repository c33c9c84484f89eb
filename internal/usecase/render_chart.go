package usecase

import (
	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/usecase/region"
)

type RenderChart struct{}

func NewRenderChart() *RenderChart {
	return &RenderChart{}
}

// Execute builds the chart for p. The marker is drawn only for a successful result.
func (uc *RenderChart) Execute(p domain.Params, res *domain.SolveResult) domain.Chart {
	var opt *domain.Point
	if res != nil {
		opt = res.OptimalPoint()
	}
	return region.Build(p, opt)
}
