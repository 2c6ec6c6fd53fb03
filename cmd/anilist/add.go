package cmd

import (
	"fmt"

	"github.com/kerbaras/anilist/pkg/app/styles"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add an anime to the list",
		Long:  "Prompt for name, score, episode counts, status and review, then append the anime to your list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := newTracker(cmd)
			if err != nil {
				return err
			}
			anime, err := tracker.Add()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render(fmt.Sprintf("✅ Added '%s' to your list", anime.Name)))
			return nil
		},
	}
}
