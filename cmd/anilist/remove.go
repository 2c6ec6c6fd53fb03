package cmd

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove an existing anime from the list",
		Long:  "Remove the first anime whose name matches exactly. Nothing happens if no anime matches.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := newTracker(cmd)
			if err != nil {
				return err
			}
			_, err = tracker.Remove()
			return err
		},
	}
}
