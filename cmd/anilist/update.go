package cmd

import (
	"fmt"

	"github.com/kerbaras/anilist/pkg/app/styles"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update an existing anime in the list",
		Long:  "Find an anime by exact name and choose which of its fields to change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := newTracker(cmd)
			if err != nil {
				return err
			}
			found, err := tracker.Update()
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render("✅ Anime updated"))
			}
			return nil
		},
	}
}
