package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
	"github.com/aalvaropc/lpdash/internal/infra/chartimg"
	"github.com/aalvaropc/lpdash/internal/infra/chartstore"
	"github.com/aalvaropc/lpdash/internal/infra/config"
	"github.com/aalvaropc/lpdash/internal/infra/logger"
	"github.com/aalvaropc/lpdash/internal/infra/lpsolver"
	"github.com/aalvaropc/lpdash/internal/usecase"
)

// globalOpts are the persistent flags shared by every command.
type globalOpts struct {
	configPath string
	debug      bool
}

// appCtx wires the infra adapters for one command invocation.
type appCtx struct {
	root string
	cfg  domain.Config
	log  *slog.Logger

	registry *lpsolver.Registry
	renderer *chartimg.Renderer
	store    *chartstore.FileStore

	solve  *usecase.SolveModel
	render *usecase.RenderChart
	export *usecase.ExportChart
}

// withApp resolves the workspace, sets up logging and calls fn.
func withApp(opts *globalOpts, fn func(*appCtx) error) error {
	root, cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: opts.debug})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}

	return fn(newApp(root, cfg, logger.L()))
}

func newApp(root string, cfg domain.Config, log *slog.Logger) *appCtx {
	registry := lpsolver.FromConfig(cfg.Solver)
	renderer := chartimg.New(chartimg.WithSize(cfg.Chart.Width, cfg.Chart.Height))
	store := chartstore.NewFileStore(root, cfg.Chart)

	return &appCtx{
		root:     root,
		cfg:      cfg,
		log:      log,
		registry: registry,
		renderer: renderer,
		store:    store,
		solve:    usecase.NewSolveModel(registry, log),
		render:   usecase.NewRenderChart(),
		export:   usecase.NewExportChart(renderer, store, log),
	}
}

// resolveConfig honors --config, otherwise walks up from the working directory.
// Without any lpdash.yaml the working directory is the root and defaults apply.
func resolveConfig(configFlag string) (string, domain.Config, error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", domain.Config{}, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := config.LoadFile(abs)
		if err != nil {
			return "", domain.Config{}, err
		}
		return filepath.Dir(abs), cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", domain.Config{}, fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	root := wd
	if found, ferr := config.NewFinder().FindRoot(wd); ferr == nil {
		root = found
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return "", domain.Config{}, err
	}
	return root, cfg, nil
}
