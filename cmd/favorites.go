package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/favorites"
	"github.com/Snider/quotegen/pkg/history"
	"github.com/Snider/quotegen/pkg/jsonfile"
	"github.com/Snider/quotegen/pkg/quotes"
	"github.com/Snider/quotegen/pkg/ui"
)

// NewFavoritesCmd returns the favorites command.
func NewFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite quotes",
		Long: `Manage favorite quotes. --add saves the quote you were shown most recently,
--remove takes a position from --show or the start of an entry ID.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			show, _ := cmd.Flags().GetBool("show")
			add, _ := cmd.Flags().GetBool("add")
			remove, _ := cmd.Flags().GetString("remove")

			if !show && !add && remove == "" {
				return cmd.Help()
			}
			if add {
				addLastToFavorites(cmd, a)
			}
			if remove != "" {
				removeFavorite(cmd, a, remove)
			}
			if show {
				showFavorites(cmd, a)
			}
			return nil
		}),
	}
	cmd.Flags().Bool("show", false, "Show favorite quotes")
	cmd.Flags().Bool("add", false, "Add last quote to favorites")
	cmd.Flags().String("remove", "", "Remove a favorite by position or ID")
	return cmd
}

func addLastToFavorites(cmd *cobra.Command, a *app) {
	last, err := a.history.Last()
	switch {
	case errors.Is(err, history.ErrNoHistory):
		fmt.Fprintln(cmd.OutOrStdout(), "No quote in history to add. Run 'quotegen random' first.")
		return
	case err != nil:
		a.log.Debug("history unreadable", "err", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Error reading history.")
		return
	}
	saveFavorite(cmd, a, quotes.Selection{
		Quote:    quotes.Quote{Text: last.Quote, Author: last.Author},
		Category: last.Category,
	})
}

func removeFavorite(cmd *cobra.Command, a *app, ref string) {
	out := cmd.OutOrStdout()
	removed, err := a.favorites.Remove(ref)
	switch {
	case err == nil:
		ui.Success(out, "Removed \"%s\" — %s", removed.Quote, removed.Author)
	case errors.Is(err, favorites.ErrNoFavorites):
		fmt.Fprintln(out, "No favorite quotes saved.")
	case errors.Is(err, favorites.ErrNotFound):
		fmt.Fprintf(out, "No favorite matches '%s'.\n", ref)
	default:
		ui.Failure(out, "Failed to remove favorite")
		fmt.Fprintf(cmd.ErrOrStderr(), "Error saving to favorites: %v\n", err)
	}
}

func showFavorites(cmd *cobra.Command, a *app) {
	out := cmd.OutOrStdout()

	entries, err := a.favorites.List()
	switch {
	case errors.Is(err, favorites.ErrNoFavorites):
		fmt.Fprintln(out, "No favorite quotes saved.")
		return
	case jsonfile.IsCorrupt(err):
		a.log.Debug("favorites unreadable", "err", err)
		fmt.Fprintln(out, "Error reading favorites.")
		return
	case err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading favorites: %v\n", err)
		return
	}

	ui.Heading(out, "⭐ FAVORITE QUOTES", listWidth)
	for i, e := range entries {
		fmt.Fprintf(out, "%d. \"%s\"\n", i+1, e.Quote)
		fmt.Fprintf(out, "   — %s (%s)\n", e.Author, e.Category)
		fmt.Fprintf(out, "   Saved: %s\n\n", e.SavedAt.Local().Format(timeFormat))
	}
}
