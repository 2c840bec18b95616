package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salescope-dev/salescope/internal/menu"
)

func newMenuCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive analysis menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *rootOptions) error {
	a, err := opts.loadApp(cmd)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	m := menu.New(in, cmd.OutOrStdout(), a)
	m.Echo = !isTerminal(in)
	return m.Run()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
