package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lilellia/fluidpath/internal/config"
	"github.com/lilellia/fluidpath/internal/logging"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pathq
func NewRootCommand() *cobra.Command {
	cfg := config.LoadOrDefault()

	cmd := &cobra.Command{
		Use:   "pathq",
		Short: "Filesystem query and manipulation tool",
		Long: `Pathq inspects and manipulates filesystem trees.

It offers filtered recursive search, tree listings, metadata queries,
crash-safe writes, and copy/move/delete operations that preserve
metadata and handle cross-device moves.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !cfg.Output.Color {
				color.NoColor = true
			}

			logger := logging.Nop()
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger = logging.NewDevelopment()
			} else if cfg.Logging.Development {
				if l, err := logging.New(logging.Config{
					Level:       cfg.Logging.Level,
					Development: true,
					OutputPaths: []string{"stderr"},
				}); err == nil {
					logger = l
				}
			}
			logger.Debug("command starting",
				zap.String("command", cmd.Name()),
				zap.Strings("args", args))
		},
	}

	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewFindCommand(cfg))
	cmd.AddCommand(NewTreeCommand(cfg))
	cmd.AddCommand(NewStatCommand())
	cmd.AddCommand(NewCopyCommand())
	cmd.AddCommand(NewMoveCommand())
	cmd.AddCommand(NewRemoveCommand())
	cmd.AddCommand(NewWriteCommand())
	cmd.AddCommand(NewDiskUsageCommand())
	cmd.AddCommand(NewArchiveCommand())

	return cmd
}
