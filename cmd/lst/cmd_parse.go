package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/tree"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump its syntax tree",
		Long: `Parse a .java file and dump its syntax tree.

The tree must print back to exactly the source it was parsed from;
parse fails otherwise.

Formats:
  tree    one line per node, indented by depth
  pretty  every field of every node
  spaces  every whitespace and comment run with its position`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if ext := filepath.Ext(filename); ext != ".java" {
				return fmt.Errorf("expected .java file, got %s", ext)
			}
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}
			cu, err := parser.Parse(data, parser.WithFile(filename))
			if err != nil {
				return fmt.Errorf("parse java file: %w", err)
			}
			if printed := printer.Print(cu); printed != string(data) {
				return fmt.Errorf("%s does not print back to its source", filename)
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "tree":
				return dumpTree(out, cu)
			case "pretty":
				_, err := fmt.Fprintf(out, "%# v\n", pretty.Formatter(cu))
				return err
			case "spaces":
				return dumpSpaces(out, cu)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, pretty, spaces)")

	return cmd
}

func dumpTree(w io.Writer, cu *tree.CompilationUnit) error {
	var b strings.Builder
	tree.Inspect(cu, func(t tree.Tree, c *tree.Cursor) bool {
		b.WriteString(strings.Repeat("  ", c.Depth()))
		b.WriteString(tree.KindOf(t))
		if p := tree.PrefixOf(t); !p.IsEmpty() {
			fmt.Fprintf(&b, " prefix=%q", p.String())
		}
		b.WriteByte('\n')
		return true
	})
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpSpaces(w io.Writer, cu *tree.CompilationUnit) error {
	var b strings.Builder
	tree.MapAllSpaces(cu, func(s tree.Space, loc tree.SpaceLoc) tree.Space {
		if !s.IsEmpty() {
			fmt.Fprintf(&b, "%-28s %q\n", loc, s.String())
		}
		return s
	})
	_, err := io.WriteString(w, b.String())
	return err
}
