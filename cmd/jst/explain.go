package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vango-dev/jst/internal/errors"
)

func explainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code",
		Long: `Describe an error code the way the CLI reports it, or list every
registered code when none is given.

Examples:
  jst explain
  jst explain J020
  jst explain J001 --no-color`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, code := range errors.Codes() {
					t, _ := errors.Lookup(code)
					fmt.Fprintf(tw, "%s\t%s\t%s\n", code, t.Category, t.Message)
				}
				return tw.Flush()
			}

			if _, ok := errors.Lookup(args[0]); !ok {
				return errors.New("J082").WithDetailf("no error is registered as %q", args[0])
			}
			return a.printer().Fprint(w, errors.New(args[0]))
		},
	}
}
