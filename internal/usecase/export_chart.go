package usecase

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/ports"
)

type ExportChart struct {
	renderer ports.ChartRenderer
	store    ports.ChartStore
	log      *slog.Logger
}

func NewExportChart(r ports.ChartRenderer, s ports.ChartStore, log *slog.Logger) *ExportChart {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &ExportChart{renderer: r, store: s, log: log}
}

// Execute renders c in format and writes it through the store, returning the path.
func (uc *ExportChart) Execute(c domain.Chart, name, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))

	var buf bytes.Buffer
	if err := uc.renderer.Render(&buf, c, format); err != nil {
		uc.log.Error("chart.render.failed", "format", format, "err", err)
		return "", fmt.Errorf("render chart: %w", err)
	}

	path, err := uc.store.SaveChart(name, format, buf.Bytes())
	if err != nil {
		uc.log.Error("chart.save.failed", "format", format, "err", err)
		return "", err
	}

	uc.log.Info("chart.exported", "path", path, "format", format, "bytes", buf.Len())
	return path, nil
}
