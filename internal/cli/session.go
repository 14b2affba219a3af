package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
)

// openSession builds a headless session that logs to the command's stderr.
func openSession(cmd *cobra.Command, opts app.Options) (*app.Session, error) {
	opts.Console = cmd.ErrOrStderr()
	return app.NewSession(opts, false)
}
