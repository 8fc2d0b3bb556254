package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"filefinder/internal/domain"
	"filefinder/internal/scanner"
)

var listAbsolute bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list root [query]",
		Short: "Print matching entries without starting the TUI",
		Long: `list walks root and prints every entry whose name contains query,
one per line, relative to root. An empty or missing query lists everything.
Directories are included and shown with a trailing separator.`,
		Example: `filefinder list ~/src main.go`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 1 {
				query = args[1]
			}
			return runList(cmd.OutOrStdout(), args[0], query, listAbsolute)
		},
	}

	cmd.Flags().BoolVar(&listAbsolute, "absolute", false, "print absolute paths")
	return cmd
}

func runList(w io.Writer, root, query string, absolute bool) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	// Color only when writing to a terminal
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
	dir := color.New(color.FgBlue, color.Bold)

	for _, item := range scanner.Scan(root, query) {
		line := displayPath(item, absolute)
		if item.IsDir {
			dir.Fprintln(w, line+string(filepath.Separator))
			continue
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func displayPath(item domain.FileItem, absolute bool) string {
	if absolute {
		return item.Path
	}
	return item.RelativePath
}
