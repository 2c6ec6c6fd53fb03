package cmd

import (
	"os"

	"github.com/kerbaras/anilist/pkg/config"
	"github.com/kerbaras/anilist/pkg/data"
	"github.com/kerbaras/anilist/pkg/services"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "anilist",
		Short: "A way to store your favorite anime",
		Long: "Keep a personal list of anime with score, episode progress, watch status and review.\n" +
			"The list is stored as JSON in ~/anilist.json unless --file-name or $" + config.EnvFileName + " says otherwise.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("file-name", "f", "", "List file (default is ~/"+config.DefaultFileName+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newAddCmd(),
		newUpdateCmd(),
		newRemoveCmd(),
		newSearchCmd(),
		newExportCmd(),
		newListCmd(),
	)
	return root
}

// newTracker resolves the list file and wires a Tracker to the command's
// standard streams.
func newTracker(cmd *cobra.Command) (*services.Tracker, error) {
	fileName, _ := cmd.Flags().GetString("file-name")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Resolve(fileName, verbose)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())
	store := data.NewStore(cfg.FileName, logger)
	return services.NewTracker(store, cmd.InOrStdin(), cmd.OutOrStdout(), logger), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
