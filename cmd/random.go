package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/favorites"
	"github.com/Snider/quotegen/pkg/quotes"
	"github.com/Snider/quotegen/pkg/ui"
)

type randomOptions struct {
	category    string
	randomStyle bool
	layout      string
	noPrompt    bool
}

// NewRandomCmd returns the random command.
func NewRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Get a random quote",
		Long: `Show a random quote, optionally from one category, and offer to save it to
your favorites.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			var opts randomOptions
			opts.category, _ = cmd.Flags().GetString("category")
			opts.randomStyle, _ = cmd.Flags().GetBool("style")
			opts.layout, _ = cmd.Flags().GetString("layout")
			opts.noPrompt, _ = cmd.Flags().GetBool("no-prompt")
			return runRandom(cmd, a, opts)
		}),
	}
	cmd.Flags().StringP("category", "c", "", "Specific category")
	cmd.Flags().BoolP("style", "s", false, "Random display style")
	cmd.Flags().String("layout", "", "Display style: simple, boxed or fancy")
	cmd.Flags().Bool("no-prompt", false, "Do not offer to add the quote to favorites")
	return cmd
}

func runRandom(cmd *cobra.Command, a *app, opts randomOptions) error {
	out := cmd.OutOrStdout()

	style := ui.StyleSimple
	switch {
	case opts.layout != "":
		s, err := ui.ParseStyle(opts.layout)
		if err != nil {
			return err
		}
		style = s
	case opts.randomStyle:
		style = ui.RandomStyle(rand.IntN)
	}

	sel, err := a.store.Pick(opts.category)
	var unknown *quotes.UnknownCategoryError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintf(out, "Category '%s' not found. Available categories: %s\n",
			unknown.Name, strings.Join(unknown.Available, ", "))
		return nil
	case errors.Is(err, quotes.ErrEmptyCategory):
		fmt.Fprintf(out, "No quotes found for category '%s'\n", sel.Category)
		return nil
	case err != nil:
		return err
	}

	// The quote is shown even if it cannot be recorded.
	if err := a.history.Record(sel); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error saving to history: %v\n", err)
	}

	if err := a.renderer.Render(out, style, sel); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if opts.noPrompt || !ui.IsInteractive(in) {
		return nil
	}
	save, err := ui.Confirm(in, out, "Add to favorites? (y/n): ")
	if err != nil || !save {
		return err
	}
	saveFavorite(cmd, a, sel)
	return nil
}

func saveFavorite(cmd *cobra.Command, a *app, sel quotes.Selection) {
	_, err := a.favorites.Add(sel)
	switch {
	case err == nil:
		fmt.Fprintln(cmd.OutOrStdout(), "Added to favorites! ⭐")
	case errors.Is(err, favorites.ErrAlreadyFavorite):
		fmt.Fprintln(cmd.OutOrStdout(), "Quote already in favorites.")
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error saving to favorites: %v\n", err)
	}
}
