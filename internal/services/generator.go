package services

import (
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/premisgen/internal/assembler"
	"github.com/vvka-141/premisgen/internal/checksum"
	"github.com/vvka-141/premisgen/internal/files/filesystem"
	"github.com/vvka-141/premisgen/internal/files/scanner"
	"github.com/vvka-141/premisgen/internal/serializer"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// SourceScanner scans a SIP and checks that its root exists.
type SourceScanner interface {
	premisgen.FileScanner
	ValidateSourceRoot(sourcePath string) error
}

// GenerateResult is what one Generate call produced.
type GenerateResult struct {
	Scan       premisgen.ScanResult
	Record     *assembler.Result
	OutputPath string
}

// GeneratorService turns a SIP directory into a PREMIS document.
// Thread-Safety: safe for concurrent Generate() calls when the scanner and
// fingerprinter are.
type GeneratorService struct {
	scanner  SourceScanner
	detector premisgen.Fingerprinter
	logger   premisgen.Logger
	out      io.Writer
}

// NewGeneratorService creates a generator with all dependencies injected.
// out receives the document on dry runs.
// Panics on nil dependencies (programming error).
func NewGeneratorService(
	scanner SourceScanner,
	detector premisgen.Fingerprinter,
	logger premisgen.Logger,
	out io.Writer,
) *GeneratorService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if detector == nil {
		panic("detector cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &GeneratorService{scanner: scanner, detector: detector, logger: logger, out: out}
}

// NewGeneratorServiceWithFS wires the scanner and SHA-256 detector over fsProvider.
func NewGeneratorServiceWithFS(fsProvider filesystem.FileSystemProvider, logger premisgen.Logger, out io.Writer) *GeneratorService {
	return NewGeneratorService(
		scanner.NewScannerWithFS(fsProvider),
		checksum.NewDetector(fsProvider, checksum.New()),
		logger,
		out,
	)
}

// Generate validates cfg, scans the source tree, fingerprints every
// classified file, assembles the record and writes it.
//
// Errors wrap premisgen.ErrInvalidConfig, premisgen.ErrSourceNotFound or
// premisgen.ErrSerialization. Files that cannot be fingerprinted are
// recorded with their size only and a warning.
func (g *GeneratorService) Generate(ctx context.Context, cfg premisgen.GenerateConfig) (*GenerateResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := g.scanner.ValidateSourceRoot(cfg.SourcePath); err != nil {
		return nil, err
	}

	g.logger.Info("Scanning %s", cfg.SourcePath)
	scan, err := g.scanner.ScanDirectory(cfg.SourcePath, cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", cfg.SourcePath, err)
	}
	if len(scan.Skipped) > 0 {
		g.logger.Verbose("Skipped %d unclassified file(s): %v", len(scan.Skipped), scan.Skipped)
	}

	for i := range scan.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f := &scan.Files[i]
		fp, err := g.detector.Detect(f.Path)
		if err != nil {
			g.logger.Warn("%s: %v", f.RelativePath, err)
			continue
		}
		f.Fingerprint = fp
		g.logger.Verbose("%s %s %s %s", f.Role, f.RelativePath, fp.Format, fp.Digest)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sink assembler.Sink
	if cfg.DryRun {
		sink = serializer.NewWriterSink(g.out)
	} else {
		sink = serializer.NewFileSink(cfg.OutputPath, g.logger)
	}

	record, err := assembler.New(assembler.OptionsFrom(&cfg), sink, g.logger).Build(scan.Files)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{Scan: scan, Record: record, OutputPath: cfg.OutputPath}, nil
}
