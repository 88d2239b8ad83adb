package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Snider/quotegen/pkg/config"
	"github.com/Snider/quotegen/pkg/favorites"
	"github.com/Snider/quotegen/pkg/history"
	"github.com/Snider/quotegen/pkg/logger"
	"github.com/Snider/quotegen/pkg/quotes"
	"github.com/Snider/quotegen/pkg/ui"
)

// Version is reported by --version.
const Version = "1.0.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

type contextKey string

const appKey contextKey = "app"

// app holds what every command needs for one invocation.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	store     *quotes.Store
	history   *history.Log
	favorites *favorites.Log
	renderer  ui.Renderer
}

// NewRootCmd builds the full command tree. Running it without a subcommand
// shows a random quote.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quotegen",
		Short: "Random Quote Generator - Get inspired!",
		Long: `quotegen shows a random quote from a built-in collection merged with your
own custom quotes, and keeps a history of what you have seen and a list of
favorites.`,
		Version:           Version,
		PersistentPreRunE: setup,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return runRandom(cmd, a, randomOptions{})
		}),
	}
	root.SetVersionTemplate("Quote Generator v{{.Version}}\n")

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().String("config", "", "Config file (default "+config.DefaultFile+" if present)")
	root.PersistentFlags().Bool("categories", false, "List available categories")

	root.AddCommand(
		NewRandomCmd(),
		NewHistoryCmd(),
		NewFavoritesCmd(),
		NewAddCmd(),
		NewSearchCmd(),
		NewExportCmd(),
	)
	return root
}

// Execute runs RootCmd. This is called by main.main().
func Execute() error {
	return RootCmd.ExecuteContext(context.Background())
}

// setup loads configuration and the quote store and attaches them to the
// command context.
func setup(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logger.NewWithWriter(cmd.ErrOrStderr(), verbose, cfg.Log.Level)

	store, err := quotes.NewStore(quotes.Options{CustomPath: cfg.Files.Custom, Logger: log})
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading custom quotes: %v\n", err)
	}

	a := &app{
		cfg:   cfg,
		log:   log,
		store: store,
		history: history.New(cfg.Files.History,
			history.WithMaxEntries(cfg.History.Size),
			history.WithLogger(log),
		),
		favorites: favorites.New(cfg.Files.Favorites, log),
		renderer:  ui.Renderer{Width: cfg.Display.Width},
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey, a))
	return nil
}

// withApp adapts a handler that needs the app. It also serves the global
// --categories flag, which lists categories instead of running the command.
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, ok := cmd.Context().Value(appKey).(*app)
		if !ok {
			return errors.New("command context is not initialised")
		}
		if list, _ := cmd.Flags().GetBool("categories"); list {
			printCategories(cmd.OutOrStdout(), a.store)
			return nil
		}
		return run(cmd, args, a)
	}
}

func printCategories(w io.Writer, store *quotes.Store) {
	fmt.Fprintln(w, "Available quote categories:")
	for _, name := range store.Categories() {
		fmt.Fprintf(w, "  - %s\n", name)
	}
}
