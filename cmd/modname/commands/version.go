package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/modname/cmd"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, commit, build date and Go version of modname.`,
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			w := c.OutOrStdout()
			fmt.Fprintf(w, "modname version %s\n", cmd.Version)
			fmt.Fprintf(w, "  commit:    %s\n", cmd.Commit)
			fmt.Fprintf(w, "  built:     %s\n", cmd.Date)
			fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
		},
	}
}
