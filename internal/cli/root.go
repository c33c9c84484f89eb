package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lpdash/internal/infra/config"
	"github.com/aalvaropc/lpdash/internal/infra/fsinit"
	"github.com/aalvaropc/lpdash/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:          "lpdash",
		Short:        "lpdash: interactive dashboard for a two-variable linear program",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(opts, func(app *appCtx) error {
				deps := tui.Deps{
					Config:      app.cfg,
					Solvers:     app.registry,
					SolveModel:  app.solve,
					RenderChart: app.render,
					ExportChart: app.export,
					Locator:     config.NewFinder(),
					Initializer: fsinit.NewInitializer(),
					Root:        app.root,
					Logger:      app.log,
					Debug:       opts.debug,
				}
				return tui.Run(deps)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to lpdash.yaml (default: search upward from the working directory)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .lpdash/logs/lpdash.log")

	cmd.AddCommand(solveCmd(opts))
	cmd.AddCommand(renderCmd(opts))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
