package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/fileops"
)

// NewCopyCommand creates and returns the cp subcommand
func NewCopyCommand() *cobra.Command {
	var (
		metadata    bool
		follow      bool
		dirsExistOK bool
		ignoreGlobs []string
	)

	cmd := &cobra.Command{
		Use:     "cp <src> <dst>",
		Aliases: []string{"copy"},
		Short:   "Copy a file, directory tree, or symlink",
		Long: `Copy src to dst. Directories are copied recursively; symlinks are
recreated rather than followed unless --follow is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileops.Copy(args[0], args[1], fileops.CopyOptions{
				Metadata:         metadata,
				FollowSymlinks:   follow,
				MaintainSymlinks: !follow,
				DirsExistOK:      dirsExistOK,
				Ignore:           ignoreGlobs,
			})
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&metadata, "preserve", "p", false, "preserve permissions and timestamps")
	cmd.Flags().BoolVarP(&follow, "follow", "L", false, "copy symlink targets instead of the links")
	cmd.Flags().BoolVarP(&dirsExistOK, "force", "f", false, "merge into an existing destination directory")
	cmd.Flags().StringSliceVarP(&ignoreGlobs, "ignore", "x", nil, "skip entries whose name matches these globs")

	return cmd
}

// NewMoveCommand creates and returns the mv subcommand
func NewMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mv <src> <dst>",
		Aliases: []string{"move"},
		Short:   "Move or rename a path",
		Long: `Move src to dst. Uses a direct rename when possible and falls back
to copy-then-delete when src and dst live on different filesystems.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileops.Move(args[0], args[1])
		},
		SilenceUsage: true,
	}

	return cmd
}

// NewRemoveCommand creates and returns the rm subcommand
func NewRemoveCommand() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:     "rm <path>...",
		Aliases: []string{"remove"},
		Short:   "Delete files and directories",
		Long: `Delete each path. Non-empty directories are refused unless
--recursive is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := fileops.Delete(path, recursive); err != nil {
					return fmt.Errorf("failed to delete %s: %w", path, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "delete directories and their contents")

	return cmd
}
