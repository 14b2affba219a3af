package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/view"
)

func newShowCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "show <imdb-id>",
		Short:   "Print the full details of one movie",
		Example: `  marquee show tt0372784`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, *opts, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, opts app.Options, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("imdb id is empty")
	}

	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	c := s.Controller
	c.ShowDetails(cmd.Context(), id)

	st := c.Store().Snapshot()
	if st.DetailErr != nil {
		return fmt.Errorf("details %s: %w", id, st.DetailErr)
	}
	scr := view.Render(st, s.ViewOptions())
	if scr.Modal == nil || scr.Modal.Loading {
		return fmt.Errorf("details %s: no movie returned", id)
	}
	return printDetail(cmd.OutOrStdout(), scr.Modal)
}

// printDetail writes the detail modal as plain text. Fields the API left
// unavailable are already gone.
func printDetail(out io.Writer, md *view.Modal) error {
	var b strings.Builder

	title := md.Title
	if md.Year != "" {
		title += " (" + md.Year + ")"
	}
	b.WriteString(title + "\n")
	if line := view.RatingLine(md.Rating); line != "" {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	for _, f := range md.Fields {
		fmt.Fprintf(&b, "%-10s%s\n", f.Label, f.Value)
	}
	fmt.Fprintf(&b, "%-10s%s\n", "Poster", md.Poster)

	if md.Plot != "" {
		b.WriteString("\nPlot\n" + md.Plot + "\n")
	}
	if md.IMDbURL != "" {
		b.WriteString("\n" + md.IMDbURL + "\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}
