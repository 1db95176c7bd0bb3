package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/metadata"
	"github.com/lilellia/fluidpath/pathtype"
)

// NewStatCommand creates and returns the stat subcommand
func NewStatCommand() *cobra.Command {
	var (
		asJSON bool
		mime   bool
	)

	cmd := &cobra.Command{
		Use:   "stat <path>...",
		Short: "Show metadata for one or more paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			label := color.New(color.FgCyan)

			for _, path := range args {
				info, err := metadata.Stat(path)
				if err != nil {
					return err
				}

				if asJSON {
					data, err := sonic.MarshalString(info)
					if err != nil {
						return fmt.Errorf("failed to encode %s: %w", path, err)
					}
					fmt.Fprintln(out, data)
					continue
				}

				fmt.Fprintf(out, "%s %s\n", label.Sprint("path:"), info.Path)
				fmt.Fprintf(out, "%s %s\n", label.Sprint("type:"), pathtype.Classify(path, false))
				fmt.Fprintf(out, "%s %s (%d bytes)\n", label.Sprint("size:"), metadata.FormatBytes(info.Size), info.Size)
				fmt.Fprintf(out, "%s %s\n", label.Sprint("mode:"), info.Mode)
				fmt.Fprintf(out, "%s %s\n", label.Sprint("modified:"), info.Modified.Format("2006-01-02 15:04:05"))
				if mime {
					mt, err := metadata.MIMEType(path)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s %s\n", label.Sprint("mime:"), mt)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit one JSON object per path")
	cmd.Flags().BoolVar(&mime, "mime", false, "detect and show the MIME type (files only)")

	return cmd
}
