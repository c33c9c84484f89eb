package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lpdash/internal/domain"
)

func renderCmd(opts *globalOpts) *cobra.Command {
	var solve bool
	var solver string
	var format string
	var out string
	var params *paramFlags

	c := &cobra.Command{
		Use:   "render",
		Short: "Render the feasible region chart to an image file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *appCtx) error {
				p, err := params.resolve(cmd.Flags(), app.cfg)
				if err != nil {
					return err
				}

				f := strings.ToLower(strings.TrimSpace(format))
				if f == "" {
					f = app.cfg.Chart.Format
				}

				var res *domain.SolveResult
				if solve {
					name := solver
					if name == "" {
						name = string(app.cfg.Solver.Default)
					}
					r := app.solve.Execute(cmd.Context(), name, p)
					res = &r
					fmt.Fprintln(cmd.ErrOrStderr(), r.Message)
				}

				chart := app.render.Execute(p, res)

				if out == "" {
					path, err := app.export.Execute(chart, "feasible region", f)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), path)
					return nil
				}

				path, err := writeChart(app, chart, f, out)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}

	params = bindParamFlags(c)
	c.Flags().BoolVar(&solve, "solve", false, "Solve first and draw the optimal point")
	c.Flags().StringVarP(&solver, "solver", "s", "", "Solver used with --solve: glpk|cbc (default from config)")
	c.Flags().StringVar(&format, "format", "", "Image format: png|svg (default from config)")
	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default: timestamped file under the chart dir)")
	return c
}

// writeChart renders into an explicit path, bypassing the timestamped store.
func writeChart(app *appCtx, chart domain.Chart, format, out string) (string, error) {
	var buf bytes.Buffer
	if err := app.renderer.Render(&buf, chart, format); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}

	path := out
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &domain.OpError{Op: "cli.render", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", &domain.OpError{Op: "cli.render", Kind: domain.KindExecution, Path: path, Err: err}
	}

	app.log.Info("chart.exported", "path", path, "format", format, "bytes", buf.Len())
	return path, nil
}
