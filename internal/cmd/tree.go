package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/internal/config"
	"github.com/lilellia/fluidpath/traverse"
)

// NewTreeCommand creates and returns the tree subcommand
func NewTreeCommand(cfg *config.Config) *cobra.Command {
	var (
		maxDepth     int
		showHidden   bool
		excludeGlobs []string
		dirsOnly     bool
	)

	cmd := &cobra.Command{
		Use:   "tree <root>",
		Short: "Print an indented listing of a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := traverse.Walk(args[0], traverse.Filter{
				ShowHidden:   showHidden || cfg.Find.ShowHidden,
				MaxDepth:     maxDepth,
				ExcludeGlobs: excludeGlobs,
				OnError: func(path string, err error) {
					fmt.Fprintf(cmd.ErrOrStderr(), "pathq: %s: %v\n", path, err)
				},
			})
			if err != nil {
				return err
			}

			dirColor := color.New(color.FgBlue, color.Bold)
			out := cmd.OutOrStdout()
			files, dirs := 0, 0
			fmt.Fprintln(out, args[0])
			for e := range entries {
				if dirsOnly && !e.IsDir {
					continue
				}
				indent := strings.Repeat("  ", e.Depth)
				if e.IsDir {
					dirs++
					fmt.Fprintf(out, "%s%s\n", indent, dirColor.Sprint(e.Name()))
				} else {
					files++
					fmt.Fprintf(out, "%s%s\n", indent, e.Name())
				}
			}
			fmt.Fprintf(out, "\n%d directories, %d files\n", dirs, files)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "do not descend past this depth (0 = unlimited)")
	cmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "include dot-prefixed entries")
	cmd.Flags().StringSliceVarP(&excludeGlobs, "exclude", "x", nil, "prune entries whose name matches these globs")
	cmd.Flags().BoolVarP(&dirsOnly, "dirs", "d", false, "list directories only")

	return cmd
}
