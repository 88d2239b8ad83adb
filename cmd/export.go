package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/ui"
)

// NewExportCmd returns the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <filepath>",
		Short: "Export quotes to file",
		Long: `Export quotes to a file. The format follows the extension: .yaml or .yml,
.toml, and JSON for anything else.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			noCustom, _ := cmd.Flags().GetBool("no-custom")
			path := args[0]

			if err := a.store.Export(path, !noCustom); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error exporting quotes: %v\n", err)
				ui.Failure(cmd.OutOrStdout(), "Failed to export quotes")
				return nil
			}
			ui.Success(cmd.OutOrStdout(), "Quotes exported to %s", path)
			return nil
		}),
	}
	cmd.Flags().Bool("no-custom", false, "Exclude custom quotes")
	return cmd
}
