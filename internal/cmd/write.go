package cmd

import (
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/atomicfile"
)

// NewWriteCommand creates and returns the write subcommand
func NewWriteCommand() *cobra.Command {
	var perm uint32

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Atomically write stdin to a file",
		Long: `Stream stdin into path through a same-directory temp file that is
fsynced and renamed into place. The previous content survives any
failure, and concurrent readers never observe a partial write.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return atomicfile.WriteReader(args[0], cmd.InOrStdin(), fs.FileMode(perm))
		},
		SilenceUsage: true,
	}

	cmd.Flags().Uint32Var(&perm, "mode", 0o644, "permission bits for the written file")

	return cmd
}
