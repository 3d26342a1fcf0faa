package serializer

import (
	"io"

	"github.com/vvka-141/premisgen/internal/assembler"
	"github.com/vvka-141/premisgen/internal/schema"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// FileSink writes the record to Path.
type FileSink struct {
	Path       string
	Serializer *Serializer
	Logger     premisgen.Logger
}

// NewFileSink returns a sink writing to path with the default serializer.
func NewFileSink(path string, logger premisgen.Logger) *FileSink {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &FileSink{Path: path, Serializer: New(), Logger: logger}
}

func (s *FileSink) Write(root *schema.Premis) error {
	if err := s.Serializer.WriteFile(s.Path, root); err != nil {
		return err
	}
	s.Logger.Info("Wrote %s", s.Path)
	return nil
}

// WriterSink encodes the record to W, e.g. stdout for a dry run.
type WriterSink struct {
	W          io.Writer
	Serializer *Serializer
}

// NewWriterSink returns a sink encoding to w with the default serializer.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w, Serializer: New()}
}

func (s *WriterSink) Write(root *schema.Premis) error {
	return s.Serializer.Encode(s.W, root)
}

var (
	_ assembler.Sink = (*FileSink)(nil)
	_ assembler.Sink = (*WriterSink)(nil)
)
