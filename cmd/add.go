package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/quotes"
	"github.com/Snider/quotegen/pkg/ui"
)

// NewAddCmd returns the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <quote> <author>",
		Short: "Add a custom quote",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			category, _ := cmd.Flags().GetString("category")

			err := a.store.AddCustom(quotes.Quote{Text: args[0], Author: args[1]}, category)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error saving custom quote: %v\n", err)
				ui.Failure(cmd.OutOrStdout(), "Failed to add quote")
				return nil
			}
			ui.Success(cmd.OutOrStdout(), "Quote added to category '%s'", category)
			return nil
		}),
	}
	cmd.Flags().StringP("category", "c", "custom", "Quote category")
	return cmd
}
