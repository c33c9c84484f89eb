package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lpdash/internal/domain"
)

func solveCmd(opts *globalOpts) *cobra.Command {
	var solver string
	var format string
	var params *paramFlags

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve the model once and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *appCtx) error {
				p, err := params.resolve(cmd.Flags(), app.cfg)
				if err != nil {
					return err
				}

				name := solver
				if name == "" {
					name = string(app.cfg.Solver.Default)
				}

				res := app.solve.Execute(cmd.Context(), name, p)
				if err := printResult(cmd.OutOrStdout(), p, res, format); err != nil {
					return err
				}
				if !res.Success {
					return fmt.Errorf("solve failed (%s)", res.Termination)
				}
				return nil
			})
		},
	}

	params = bindParamFlags(c)
	c.Flags().StringVarP(&solver, "solver", "s", "", "Solver: glpk|cbc (default from config)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printResult(w io.Writer, p domain.Params, res domain.SolveResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"params": p,
			"result": res,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyResult(w, p, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyResult(w io.Writer, p domain.Params, res domain.SolveResult) {
	fmt.Fprintf(w, "Solver:      %s\n", res.Solver)
	fmt.Fprintf(w, "Parameters:  max_x=%g max_y=%g rhs1=%g rhs2=%g rhs3=%g\n",
		p.XUpper, p.YUpper, p.RHS1, p.RHS2, p.RHS3)
	fmt.Fprintf(w, "Status:      %s\n", res.Message)
	fmt.Fprintf(w, "Termination: %s\n", res.Termination)
	if !res.Success {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Optimal x:               %.2f\n", res.X)
	fmt.Fprintf(w, "Optimal y:               %.2f\n", res.Y)
	fmt.Fprintf(w, "Objective Value Z (x+y): %.2f\n", res.Objective)
}
