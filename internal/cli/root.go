package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/marquee/internal/app"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("stdout is not a terminal; use `marquee search <title>` or `marquee show <imdb-id>` for plain output")

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command. Without a subcommand it starts
// the terminal UI.
func NewRootCmd(ver string) *cobra.Command {
	opts := &app.Options{Version: ver}

	cmd := &cobra.Command{
		Use:   "marquee",
		Short: "Search movies and browse their details from the terminal",
		Long: `Marquee searches a movie metadata API by title, shows the results as a grid
of cards, and opens full details for any result.

Run without a subcommand for the interactive UI. The search and show
subcommands print plain text and suit scripts and pipes.`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errNotTerminal
			}
			return app.Run(cmd.Context(), *opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/marquee/config.toml)")
	flags.StringVar(&opts.APIBaseURL, "api", "", "movie API base URL (overrides config and MARQUEE_API_BASE_URL)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newSearchCmd(opts), newShowCmd(opts))
	return cmd
}

const rootCmdExample = `  # Start the interactive explorer
  marquee

  # Print search results
  marquee search the matrix

  # Print one movie's details
  marquee show tt0133093

  # Point at another API
  marquee --api http://movies.internal:8080/api search alien`
