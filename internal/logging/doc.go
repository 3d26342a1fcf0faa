// Package logging provides concrete implementations of the premisgen.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - JSONLogger: Writes structured JSON lines through zap
//   - MemoryLogger: Records messages for assertions in tests
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
