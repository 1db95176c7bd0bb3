package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lilellia/fluidpath/archive"
)

// NewArchiveCommand creates and returns the archive subcommand group
func NewArchiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Create and extract zip and tar archives",
	}

	cmd.AddCommand(newArchiveCreateCommand())
	cmd.AddCommand(newArchiveExtractCommand())

	return cmd
}

func newArchiveCreateCommand() *cobra.Command {
	var (
		format      string
		compression string
		exclude     []string
	)

	cmd := &cobra.Command{
		Use:   "create <src> <out>",
		Short: "Pack a directory tree into an archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, out := args[0], args[1]
			opts := archive.Options{Exclude: exclude}

			switch format {
			case "zip":
				return archive.CreateZip(cmd.Context(), src, out, opts)
			case "tar":
				comp, err := parseCompression(compression)
				if err != nil {
					return err
				}
				return archive.CreateTar(cmd.Context(), src, out, comp, opts)
			default:
				return fmt.Errorf("unknown archive format %q (want zip or tar)", format)
			}
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&format, "format", "f", "zip", "archive format (zip or tar)")
	cmd.Flags().StringVarP(&compression, "compression", "c", "none", "tar compression (none, gzip, or zstd)")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "skip entries whose name matches these globs")

	return cmd
}

func newArchiveExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <archive> <dest>",
		Short: "Unpack an archive into a directory",
		Long: `Unpack archive into dest. Zip archives are detected by extension;
everything else is treated as tar, with gzip and zstd compression
detected from the stream. Entries that would escape dest are
rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dest := args[0], args[1]
			if strings.HasSuffix(strings.ToLower(src), ".zip") {
				return archive.ExtractZip(cmd.Context(), src, dest)
			}
			return archive.ExtractTar(cmd.Context(), src, dest)
		},
		SilenceUsage: true,
	}

	return cmd
}

func parseCompression(name string) (archive.Compression, error) {
	switch name {
	case "none", "":
		return archive.NoCompression, nil
	case "gzip", "gz":
		return archive.Gzip, nil
	case "zstd":
		return archive.Zstd, nil
	default:
		return "", fmt.Errorf("unknown compression %q (want none, gzip, or zstd)", name)
	}
}
