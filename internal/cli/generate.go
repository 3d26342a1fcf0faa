package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vvka-141/premisgen/internal/config"
	"github.com/vvka-141/premisgen/internal/files/filesystem"
	"github.com/vvka-141/premisgen/internal/files/scanner"
	"github.com/vvka-141/premisgen/internal/logging"
	"github.com/vvka-141/premisgen/internal/services"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

var generateCmd = &cobra.Command{
	Use:   "generate <source_root> [output_file]",
	Short: "Write the PREMIS record of a SIP directory",
	Long: `Generate scans a SIP directory, fingerprints every classified file with
SHA-256 and writes a PREMIS v3 record.

The output defaults to premis.xml inside the source root. An existing record
at that location is never described as part of the package and is replaced
atomically.

Settings are read from premisgen.yaml in the source root (or --config),
then from PREMISGEN_* environment variables (a .env file in the working
directory is loaded first), then from flags.

Examples:
  # Write ./CNR-2025-0001/premis.xml
  premisgen generate ./CNR-2025-0001

  # Write to an explicit path with a custom SIP identifier
  premisgen generate ./sip ./out/premis.xml --sip-id CNR-2025-0001

  # Print the record instead of writing it, logging as JSON
  premisgen generate ./sip --dry-run --log-format json`,
	Args: RequireSourceRootAndOutput,
	RunE: runGenerate,
}

type generateFlagValues struct {
	configPath string
	sipID      string
	noEvents   bool
	logFormat  string
	dryRun     bool
}

var generateFlags generateFlagValues

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFlags.configPath, "config", "",
		"Path to a premisgen.yaml (default: <source_root>/premisgen.yaml)")
	generateCmd.Flags().StringVar(&generateFlags.sipID, "sip-id", "",
		"Intellectual entity identifier (default: source root directory name)")
	generateCmd.Flags().BoolVar(&generateFlags.noEvents, "no-events", false,
		"Omit the ingestion event")
	generateCmd.Flags().StringVar(&generateFlags.logFormat, "log-format", logFormatText,
		"Log output format: text or json")
	generateCmd.Flags().BoolVar(&generateFlags.dryRun, "dry-run", false,
		"Print the record to stdout instead of writing it")
}

func resetGenerateFlags() {
	generateFlags = generateFlagValues{logFormat: logFormatText}
}

// buildGenerateConfig layers defaults, the project config, environment
// overrides, positional arguments and flags, in that order.
func buildGenerateConfig(args []string, verbose bool) (premisgen.GenerateConfig, error) {
	sourcePath := args[0]

	cfg := premisgen.GenerateConfig{
		SourcePath:          sourcePath,
		SIPID:               sipIDFromPath(sourcePath),
		SystemAgent:         premisgen.DefaultSystemAgent,
		Depositor:           premisgen.DefaultDepositor,
		Rights:              premisgen.DefaultRights,
		CreatingApplication: premisgen.DefaultCreatingApplication,
		IngestionEvent:      true,
		DryRun:              generateFlags.dryRun,
		Verbose:             verbose,
	}

	project, err := config.Resolve(sourcePath, generateFlags.configPath)
	if err != nil {
		return cfg, err
	}
	project.ApplyTo(&cfg)

	switch {
	case len(args) > 1:
		cfg.OutputPath = args[1]
	case cfg.OutputPath == "":
		cfg.OutputPath = filepath.Join(sourcePath, premisgen.DefaultOutputName)
	case !filepath.IsAbs(cfg.OutputPath):
		cfg.OutputPath = filepath.Join(sourcePath, cfg.OutputPath)
	}

	if generateFlags.sipID != "" {
		cfg.SIPID = generateFlags.sipID
	}
	if generateFlags.noEvents {
		cfg.IngestionEvent = false
	}

	return cfg, nil
}

func sipIDFromPath(sourcePath string) string {
	if abs, err := filepath.Abs(sourcePath); err == nil {
		sourcePath = abs
	}
	return filepath.Base(sourcePath)
}

// newLogger returns the logger selected by --log-format and a flush func.
func newLogger(format string, w io.Writer, verbose bool) (premisgen.Logger, func(), error) {
	switch format {
	case "", logFormatText:
		return logging.NewConsoleLoggerTo(w, verbose), func() {}, nil
	case logFormatJSON:
		l := logging.NewJSONLogger(w, verbose)
		return l, func() { _ = l.Sync() }, nil
	}
	return nil, nil, fmt.Errorf("invalid --log-format %q (want %s or %s): %w",
		format, logFormatText, logFormatJSON, premisgen.ErrUsage)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	logger, flush, err := newLogger(generateFlags.logFormat, cmd.ErrOrStderr(), verbose)
	if err != nil {
		return err
	}
	defer flush()

	// the project config lives inside the source root
	if err := scanner.NewScanner().ValidateSourceRoot(args[0]); err != nil {
		return err
	}

	cfg, err := buildGenerateConfig(args, verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := services.NewGeneratorServiceWithFS(filesystem.NewOSFileSystem(), logger, cmd.OutOrStdout())
	result, err := generator.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	if generateFlags.logFormat != logFormatJSON {
		printSummary(cmd.ErrOrStderr(), cfg, result)
	}
	return nil
}
