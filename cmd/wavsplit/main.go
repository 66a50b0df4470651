// This tool cuts a blob of concatenated WAV files into named files, and packs
// a directory of WAV files into such a blob plus its name list.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cwbudde/wavsplit"
	"github.com/cwbudde/wavsplit/internal/config"
)

var errMissingArgs = errors.New("missing required arguments")

var yellow = color.New(color.FgYellow)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// app carries what the subcommands share once the root flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func run(args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wavsplit",
		Short: "Split and repack blobs of concatenated WAV files",
		Long: `wavsplit works on blobs made of WAV files stored back to back with no index.

Supported operations:
  - extract: cut a blob at every RIFF/WAVE header and name the pieces from a name list
  - repack: join the WAV files of a directory into a blob and write its name list
  - describe: write the name list of a directory only
  - inspect: show the chunks detected in a blob`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(a.extractCmd(), a.repackCmd(), a.describeCmd(), a.inspectCmd())

	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg := config.Default()

	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}

	if err := cfg.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	a.cfg = cfg
	a.logger = initLogger(cfg.Logging, a.stderr)

	return nil
}

func initLogger(cfg config.LoggingConfig, out io.Writer) *slog.Logger {
	var level slog.Level

	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}

	return slog.New(slog.NewTextHandler(out, opts))
}

// exactArgs reports too few arguments as errMissingArgs along with the usage
// line, and trims stray whitespace from the ones given.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w\nUsage: %s", errMissingArgs, cmd.UseLine())
		}

		if len(args) > n {
			return fmt.Errorf("unexpected arguments %q\nUsage: %s", args[n:], cmd.UseLine())
		}

		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}

		return nil
	}
}

func (a *app) options(strict bool) []wavsplit.Option {
	return []wavsplit.Option{
		wavsplit.WithStrict(strict),
		wavsplit.WithLogger(a.logger),
	}
}
