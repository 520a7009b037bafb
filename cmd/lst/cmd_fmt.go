package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dhamidi/lst/internal/watch"
	"github.com/dhamidi/lst/java/format"
	"github.com/dhamidi/lst/java/parser"
	"github.com/dhamidi/lst/java/printer"
	"github.com/dhamidi/lst/java/style"
)

var errUnformatted = errors.New("some files are not formatted")

type fmtOptions struct {
	write  bool
	diff   bool
	check  bool
	strip  bool
	watch  bool
	cycles int
	styles style.NamedStyles
}

func newFmtCmd(settings *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file|dir...]",
		Short: "Format Java source files",
		Long: `Format Java source files according to a code style.

Directories are searched for .java files, skipping hidden directories.
Without arguments, reads Java source from stdin and writes the result to stdout.

Use -w to overwrite files in place, --diff to show what would change and
--check to fail when a file is not formatted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles, err := loadStyles(settings)
			if err != nil {
				return err
			}
			opts := fmtOptions{
				write:  settings.GetBool("write"),
				diff:   settings.GetBool("diff"),
				check:  settings.GetBool("check"),
				strip:  settings.GetBool("strip"),
				watch:  settings.GetBool("watch"),
				cycles: settings.GetInt("cycles"),
				styles: styles,
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if opts.write || opts.watch {
					return fmt.Errorf("-w and --watch require a file argument")
				}
				source, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				return fmtSource(out, "<stdin>", source, opts)
			}

			files, err := javaFiles(args)
			if err != nil {
				return err
			}
			err = fmtFiles(out, files, opts)
			if !opts.watch {
				return err
			}
			if err != nil && !errors.Is(err, errUnformatted) {
				return err
			}
			return watchFiles(cmd, args, opts)
		},
	}

	cmd.Flags().BoolP("write", "w", false, "overwrite files in place")
	cmd.Flags().Bool("diff", false, "print a diff instead of the formatted source")
	cmd.Flags().Bool("check", false, "list files that would change and exit with an error")
	cmd.Flags().Bool("strip", false, "strip all whitespace, then add back only what the code needs")
	cmd.Flags().Bool("watch", false, "reformat files whenever they change")
	cmd.Flags().Int("cycles", format.MaxCycles, "maximum number of formatting passes")

	return cmd
}

// formatSource parses and formats one file.
func formatSource(path string, source []byte, opts fmtOptions) (string, error) {
	cu, err := parser.Parse(source, parser.WithFile(path))
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	if opts.strip {
		return printer.Print(format.MinimumViableSpacing(format.StripWhitespace(cu))), nil
	}
	cu = format.Format(cu, format.WithStyles(opts.styles), format.WithCycles(opts.cycles))
	return printer.Print(cu), nil
}

func fmtSource(out io.Writer, path string, source []byte, opts fmtOptions) error {
	formatted, err := formatSource(path, source, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	changed := formatted != string(source)
	switch {
	case opts.check:
		if changed {
			fmt.Fprintln(out, path)
			return errUnformatted
		}
		return nil
	case opts.diff:
		if changed {
			return writeDiff(out, path, string(source), formatted)
		}
		return nil
	case opts.write:
		if !changed {
			return nil
		}
		log.Infof("formatted %s", path)
		return os.WriteFile(path, []byte(formatted), 0644)
	}
	_, err = io.WriteString(out, formatted)
	return err
}

// fmtFiles formats every file, reporting the first error after all files
// have been processed.
func fmtFiles(out io.Writer, files []string, opts fmtOptions) error {
	var first error
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err == nil {
			err = fmtSource(out, path, source, opts)
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, errUnformatted) {
			log.Errorf("%s", err)
		}
		if first == nil {
			first = err
		}
	}
	return first
}

func watchFiles(cmd *cobra.Command, paths []string, opts fmtOptions) error {
	w, err := watch.New(watch.DefaultDebounce)
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Add(paths...); err != nil {
		return err
	}
	changes := w.Start()
	log.Infof("watching %s", strings.Join(paths, ", "))

	ctx := cmd.Context()
	for {
		select {
		case files := <-changes:
			if err := fmtFiles(cmd.OutOrStdout(), files, opts); err != nil && !errors.Is(err, errUnformatted) {
				log.Warningf("%s", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// javaFiles expands directories into the .java files below them.
func javaFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if !info.IsDir() {
			if ext := filepath.Ext(arg); ext != ".java" {
				return nil, fmt.Errorf("expected .java file, got %s", arg)
			}
			files = append(files, arg)
			continue
		}
		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != arg && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ".java" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}
	return files, nil
}
