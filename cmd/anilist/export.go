package cmd

import (
	"fmt"

	"github.com/kerbaras/anilist/pkg/app/styles"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the anime list to a separate text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := newTracker(cmd)
			if err != nil {
				return err
			}
			dest, err := tracker.Export()
			if err != nil {
				return err
			}
			if dest != "" {
				fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render(fmt.Sprintf("✅ Exported list to %s", dest)))
			}
			return nil
		},
	}
}
