package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/ui"
)

// NewSearchCmd returns the search command.
func NewSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search quotes",
		Long:  `Search quote text and authors in every category, ignoring case.`,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			out := cmd.OutOrStdout()
			keyword := strings.ToLower(args[0])

			results := a.store.Search(keyword)
			if len(results) == 0 {
				fmt.Fprintf(out, "No quotes found matching '%s'\n", keyword)
				return nil
			}

			ui.Heading(out, fmt.Sprintf("🔍 SEARCH RESULTS for '%s'", keyword), listWidth)
			for _, r := range results {
				fmt.Fprintf(out, "\"%s\"\n", r.Text)
				fmt.Fprintf(out, "— %s (%s)\n\n", r.Author, r.Category)
			}
			return nil
		}),
	}
}
