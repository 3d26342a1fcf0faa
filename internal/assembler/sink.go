package assembler

import "github.com/vvka-141/premisgen/internal/schema"

// Sink receives the finished record.
type Sink interface {
	Write(root *schema.Premis) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(root *schema.Premis) error

func (f SinkFunc) Write(root *schema.Premis) error { return f(root) }
