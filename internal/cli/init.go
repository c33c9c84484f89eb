package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/lpdash/internal/infra/fsinit"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create lpdash.yaml, the chart dir and .gitignore entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}

			if err := fsinit.NewInitializer().Init(dir, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized lpdash workspace in %s\n", dir)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing lpdash.yaml")
	return c
}
