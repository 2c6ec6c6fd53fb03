package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/anilist/pkg/app/styles"
	"github.com/kerbaras/anilist/pkg/data"
	"github.com/kerbaras/anilist/pkg/services"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all anime in the list",
		Long:  "Display every anime in your list, in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := newTracker(cmd)
			if err != nil {
				return err
			}

			asTable, _ := cmd.Flags().GetBool("table")
			if !asTable {
				_, err := tracker.List()
				return err
			}

			list, err := tracker.Entries()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, styles.MutedStyle.Render(services.MsgEmptyList))
				return nil
			}
			fmt.Fprintln(out, styles.TitleStyle.Render(fmt.Sprintf("\n📺 Anime list (%d)", len(list))))
			fmt.Fprintln(out, statusSummary(list))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(list))
			return nil
		},
	}

	cmd.Flags().BoolP("table", "t", false, "Show a compact table instead of full entries")
	return cmd
}

// statusSummary counts entries per status, e.g. "Watching 2 · Completed 1 · Dropped 0".
func statusSummary(list data.List) string {
	counts := make(map[data.Status]int, len(data.Statuses))
	for _, anime := range list {
		counts[anime.Status]++
	}

	parts := make([]string, 0, len(data.Statuses)+1)
	known := 0
	for _, status := range data.Statuses {
		known += counts[status]
		parts = append(parts, styles.StatusStyle(status).Render(fmt.Sprintf("%s %d", status, counts[status])))
	}
	if other := len(list) - known; other > 0 {
		parts = append(parts, styles.StatusStyle("").Render(fmt.Sprintf("Other %d", other)))
	}
	return strings.Join(parts, " · ")
}

func renderTable(list data.List) string {
	columns := []table.Column{
		{Title: "Name", Width: 40},
		{Title: "Score", Width: 8},
		{Title: "Progress", Width: 10},
		{Title: "Status", Width: 12},
	}

	rows := make([]table.Row, 0, len(list))
	for _, anime := range list {
		rows = append(rows, table.Row{
			truncateString(anime.Name, 38),
			data.FormatScore(anime.Score),
			anime.Progress(),
			string(anime.Status),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
