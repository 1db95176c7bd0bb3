package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/fileops"
	"github.com/lilellia/fluidpath/metadata"
)

// NewDiskUsageCommand creates and returns the du subcommand
func NewDiskUsageCommand() *cobra.Command {
	var filesystem bool

	cmd := &cobra.Command{
		Use:   "du <path>...",
		Short: "Report tree sizes or filesystem usage",
		Long: `Sum the regular file sizes under each path. With --filesystem,
report total, used, and free space of the filesystem holding each
path instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)

			for _, path := range args {
				if filesystem {
					usage, err := fileops.DiskUsage(path)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\ttotal %s\tused %s\tfree %s\n",
						bold.Sprint(path),
						metadata.FormatBytes(int64(usage.Total)),
						metadata.FormatBytes(int64(usage.Used)),
						metadata.FormatBytes(int64(usage.Free)))
					continue
				}

				size, err := metadata.TotalSize(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", metadata.FormatBytes(size), bold.Sprint(path))
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&filesystem, "filesystem", "F", false, "report filesystem capacity instead of tree size")

	return cmd
}
