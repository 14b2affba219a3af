package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/view"
)

const tabPadding = 2

func newSearchCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <title...>",
		Short: "Search movies by title and print the results",
		Example: `  marquee search batman
  marquee search "the matrix"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, *opts, strings.Join(args, " "))
		},
	}
}

func runSearch(cmd *cobra.Command, opts app.Options, query string) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	c := s.Controller
	c.SetQuery(query)
	if !c.Search(cmd.Context()) {
		return fmt.Errorf("search query is empty")
	}

	st := c.Store().Snapshot()
	if st.SearchErr != nil {
		return fmt.Errorf("search %q: %w", st.TrimmedQuery(), st.SearchErr)
	}
	return printSearch(cmd.OutOrStdout(), view.Render(st, s.ViewOptions()))
}

// printSearch writes the result list the way the search page shows it.
func printSearch(out io.Writer, scr view.Screen) error {
	if scr.Empty {
		_, err := fmt.Fprintf(out, "%s\n%s\n", view.EmptyTitle, view.EmptyHint)
		return err
	}

	if _, err := fmt.Fprintf(out, "%s\n\n", scr.Heading); err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tYear\tType\tPoster")
	fmt.Fprintln(w, "--\t-----\t----\t----\t------")
	for _, c := range scr.Cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Year, c.Badge, c.Poster)
	}
	return w.Flush()
}
