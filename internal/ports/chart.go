package ports

import (
	"io"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// ChartRenderer encodes a chart description as an image.
type ChartRenderer interface {
	Render(w io.Writer, c domain.Chart, format string) error
}

// ChartStore writes exported chart images.
type ChartStore interface {
	SaveChart(name, format string, data []byte) (path string, err error)
}
