package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/wavsplit"
)

func (a *app) extractCmd() *cobra.Command {
	var (
		outputDir string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "extract <blob> <names>",
		Short: "Cut a blob into WAV files named from a name list",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				outputDir = a.cfg.Extract.OutputDir
			}

			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Extract.Strict
			}

			res, err := wavsplit.Extract(args[0], args[1], outputDir, a.options(strict)...)
			a.printExtracted(res)

			return err
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory receiving the extracted files (default from config, \"extracted\")")
	cmd.Flags().BoolVar(&strict, "strict", false, "only accept headers whose RIFF size fits in the blob")

	return cmd
}

func (a *app) printExtracted(res wavsplit.Result) {
	for _, w := range res.Written {
		fmt.Fprintf(a.stdout, "Extracted: %s (%d bytes)\n", w.Path, w.Size)
	}

	if m := res.Mismatch; m != nil {
		tail := "The remaining names will not be used."
		if m.Kind() == wavsplit.ExtraChunks {
			tail = "The remaining chunks will be ignored."
		}

		yellow.Fprintf(a.stdout, "\nWarning: Found %s. %s\n", m, tail)
	}

	fmt.Fprintf(a.stdout, "\nTotal WAV files extracted: %d\n", res.Count())
}

func (a *app) repackCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "repack <blob> <source-dir> <names>",
		Short: "Join the WAV files of a directory into a blob and write its name list",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("owner") {
				owner = a.cfg.Listing.Owner
			}

			n, err := wavsplit.Repack(args[0], args[1], args[2], owner, wavsplit.WithLogger(a.logger))
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Packed %d WAV files into %s\n", n, args[0])
			fmt.Fprintf(a.stdout, "Name list written to %s\n", args[2])

			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner column of the name list (default from config, \"user\")")

	return cmd
}

func (a *app) describeCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "describe <source-dir> <names>",
		Short: "Write the name list of a directory of WAV files",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("owner") {
				owner = a.cfg.Listing.Owner
			}

			n, err := wavsplit.Describe(args[0], args[1], owner)
			if err != nil {
				return err
			}

			a.logger.Info("wrote name list", "path", args[1], "entries", n)
			fmt.Fprintf(a.stdout, "Name list with %d entries written to %s\n", n, args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner column of the name list (default from config, \"user\")")

	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "inspect <blob>",
		Short: "List the chunks detected in a blob",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Extract.Strict
			}

			blob, err := wavsplit.ReadBlob(args[0])
			if err != nil {
				return err
			}

			infos, err := wavsplit.Inspect(blob, a.options(strict)...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a.printInfos(infos)

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "only accept headers whose RIFF size fits in the blob")

	return cmd
}

func (a *app) printInfos(infos []wavsplit.ChunkInfo) {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tOFFSET\tSIZE\tDECLARED\tRATE\tCHANS\tBITS\tDURATION\tNOTE")

	for _, info := range infos {
		note := ""

		switch {
		case !info.Valid():
			note = info.Err.Error()
		case info.Truncated():
			note = "truncated"
		}

		rate, chans := 0, 0
		if info.Format != nil {
			rate, chans = info.Format.SampleRate, info.Format.NumChannels
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			info.Index, info.Offset, info.Len(), info.DeclaredSize,
			rate, chans, info.BitDepth, info.Duration, note)
	}

	tw.Flush()

	fmt.Fprintf(a.stdout, "\nTotal WAV chunks: %d\n", len(infos))
}
