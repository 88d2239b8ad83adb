package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/history"
	"github.com/Snider/quotegen/pkg/jsonfile"
	"github.com/Snider/quotegen/pkg/ui"
)

// listWidth is the rule width under list headings.
const listWidth = 50

// timeFormat is how saved timestamps are shown.
const timeFormat = "2006-01-02 15:04"

// NewHistoryCmd returns the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show quote history",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			limit := a.cfg.History.Limit
			if cmd.Flags().Changed("number") {
				limit, _ = cmd.Flags().GetInt("number")
			}
			return showHistory(cmd, a, limit)
		}),
	}
	cmd.Flags().IntP("number", "n", 10, "Number of quotes to show")
	return cmd
}

func showHistory(cmd *cobra.Command, a *app, limit int) error {
	out := cmd.OutOrStdout()

	entries, err := a.history.Recent(limit)
	switch {
	case errors.Is(err, history.ErrNoHistory):
		fmt.Fprintln(out, "No history found.")
		return nil
	case jsonfile.IsCorrupt(err):
		a.log.Debug("history unreadable", "err", err)
		fmt.Fprintln(out, "Error reading history.")
		return nil
	case err != nil:
		return err
	}

	ui.Heading(out, "📚 QUOTE HISTORY", listWidth)
	for _, e := range entries {
		fmt.Fprintf(out, "[%s] \"%s\" — %s (%s)\n\n",
			e.Timestamp.Local().Format(timeFormat), e.Quote, e.Author, e.Category)
	}
	return nil
}
