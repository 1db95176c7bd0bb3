package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/internal/config"
	"github.com/lilellia/fluidpath/pathtype"
	"github.com/lilellia/fluidpath/traverse"
)

// NewFindCommand creates and returns the find subcommand
func NewFindCommand(cfg *config.Config) *cobra.Command {
	var (
		namePattern  string
		regexPattern string
		typeFilter   string
		extension    string
		minDepth     int
		maxDepth     int
		showHidden   bool
		excludeGlobs []string
		ignoreCase   bool
		countOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "find <root>",
		Short: "Search a tree for entries matching filters",
		Long: `Search recursively under root, printing one matching path per line.

Filters combine with AND semantics. Name patterns use glob syntax
(*, ?, **, [...]); --regex takes a full regular expression instead.
Type letters follow find(1): f=file, d=directory, l=symlink, p=pipe,
s=socket, c=char device, b=block device.

Symlinked directories are never descended into, so cyclic links
cannot cause unbounded traversal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred := traverse.Predicate{
				Filter: traverse.Filter{
					ShowHidden:   showHidden || cfg.Find.ShowHidden,
					MaxDepth:     maxDepth,
					ExcludeGlobs: excludeGlobs,
					OnError: func(path string, err error) {
						fmt.Fprintf(cmd.ErrOrStderr(), "pathq: %s: %v\n", path, err)
					},
				},
				MinDepth:  minDepth,
				FoldCase:  ignoreCase,
				Extension: extension,
			}
			if namePattern != "" {
				pred.Pattern = namePattern
				pred.Glob = true
			} else if regexPattern != "" {
				pred.Pattern = regexPattern
			}

			types, err := parseTypeFilter(typeFilter)
			if err != nil {
				return err
			}
			pred.Types = types

			matches, err := traverse.Find(args[0], pred)
			if err != nil {
				return err
			}

			count := 0
			for e := range matches {
				count++
				if !countOnly {
					fmt.Fprintln(cmd.OutOrStdout(), e.Path)
				}
			}
			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), count)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&namePattern, "name", "n", "", "glob pattern matched against entry names")
	cmd.Flags().StringVarP(&regexPattern, "regex", "r", "", "regular expression matched against entry names")
	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "entry types to include (e.g. f, d, fl)")
	cmd.Flags().StringVarP(&extension, "ext", "e", "", "require this file extension (e.g. .go)")
	cmd.Flags().IntVar(&minDepth, "min-depth", 0, "skip entries shallower than this depth")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "do not descend past this depth (0 = unlimited)")
	cmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "include dot-prefixed entries")
	cmd.Flags().StringSliceVarP(&excludeGlobs, "exclude", "x", nil, "prune entries whose name matches these globs")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "case-insensitive pattern and extension matching")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the number of matches")
	cmd.MarkFlagsMutuallyExclusive("name", "regex")

	return cmd
}

func parseTypeFilter(letters string) (pathtype.Set, error) {
	var types []pathtype.Type
	for _, c := range letters {
		switch c {
		case 'f':
			types = append(types, pathtype.RegularFile)
		case 'd':
			types = append(types, pathtype.Directory)
		case 'l':
			types = append(types, pathtype.Symlink)
		case 'p':
			types = append(types, pathtype.Pipe)
		case 's':
			types = append(types, pathtype.Socket)
		case 'c':
			types = append(types, pathtype.CharDevice)
		case 'b':
			types = append(types, pathtype.BlockDevice)
		default:
			return 0, fmt.Errorf("unknown type letter %q (want f, d, l, p, s, c, or b)", string(c))
		}
	}
	return pathtype.SetOf(types...), nil
}
