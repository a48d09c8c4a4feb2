package main

import (
	"fmt"
	"os"

	"github.com/j2lang/minij/format"
	"github.com/j2lang/minij/java/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump the resulting syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			sink := &parser.CollectingSink{}
			scanner := parser.NewScanner(filename, source)
			p := parser.NewParser(scanner, sink)
			cu := p.Parse()

			for _, d := range sink.Diagnostics {
				fmt.Fprintf(os.Stderr, "%s:%d: %s\n", d.File, d.Line, d.Message)
			}

			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(os.Stdout)
				if err := enc.Encode(cu); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "text", "":
				if includePositions {
					fmt.Fprintf(os.Stdout, "%s (line %d)\n", format.PrettyPrint(cu), cu.Line())
				} else {
					fmt.Fprint(os.Stdout, format.PrettyPrint(cu))
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if p.ErrorHasOccurred() {
				return fmt.Errorf("parse completed with %d diagnostic(s)", len(sink.Diagnostics))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include the compilation unit's source line in text output")

	return cmd
}
