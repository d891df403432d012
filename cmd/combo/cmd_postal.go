package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combo/grammar/postal"
)

func newPostalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "postal <code>...",
		Short:        "Parse Japanese postal codes and print them as NNN-NNNN",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				code, err := postal.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}

	return cmd
}
