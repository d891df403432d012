package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combo/ebnf"
	"github.com/dhamidi/combo/format"
	"github.com/dhamidi/combo/parser"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfMatchCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnf.LoadGrammar(args[0])
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfMatchCmd() *cobra.Command {
	var startProduction string
	var skipSpace bool
	var trace bool

	cmd := &cobra.Command{
		Use:           "match <grammar> <input>",
		Short:         "Parse an input file with an EBNF grammar and print the syntax tree as JSON",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnf.LoadGrammar(args[0])
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			var opts []ebnf.Option
			if skipSpace {
				opts = append(opts, ebnf.WithSkipSpace())
			}
			if trace {
				opts = append(opts, ebnf.WithTrace())
			}
			p, err := ebnf.Compile(grammar, startProduction, opts...)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			text := string(data)

			tree, err := parser.Parse(p, text, parser.WithFilename(args[1]), parser.WithRequireEnd())
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			enc := format.NewASTJSONEncoder(cmd.OutOrStdout())
			enc.SetSource(text)
			if err := enc.Encode(tree); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production")
	cmd.Flags().BoolVar(&skipSpace, "skip-space", true, "skip white space between tokens of non-lexical productions")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every production attempt (needs -vv or more)")
	cmd.MarkFlagRequired("start")

	return cmd
}

// printErrors prints each error of a grammar error list on its own line.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
