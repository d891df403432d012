package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/combo/format"
	"github.com/dhamidi/combo/grammar/json"
	"github.com/dhamidi/combo/parser"
)

func newJSONCmd() *cobra.Command {
	var tree bool
	var indent string

	cmd := &cobra.Command{
		Use:   "json [file...]",
		Short: "Parse JSON documents and print them in canonical form",
		Long: `Parse JSON documents and print them in canonical form.

Without arguments the document is read from standard input. Files are
parsed concurrently and printed in argument order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var enc format.Encoder[json.Value]
			if tree {
				enc = format.NewLineEncoder(cmd.OutOrStdout())
			} else {
				jenc := format.NewJSONEncoder(cmd.OutOrStdout())
				jenc.SetIndent(indent)
				enc = jenc
			}

			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				v, err := json.Parse(string(data), parser.WithFilename("<stdin>"))
				if err != nil {
					return err
				}
				return enc.Encode(v)
			}

			values := make([]json.Value, len(args))
			var g errgroup.Group
			for i, filename := range args {
				i, filename := i, filename
				g.Go(func() error {
					data, err := os.ReadFile(filename)
					if err != nil {
						return fmt.Errorf("read json file: %w", err)
					}
					v, err := json.Parse(string(data), parser.WithFilename(filename))
					if err != nil {
						return err
					}
					values[i] = v
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, v := range values {
				if err := enc.Encode(v); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "print one path/kind/value line per scalar")
	cmd.Flags().StringVar(&indent, "indent", "", "indent nested values (ignored with --tree)")

	return cmd
}
