// Package scanner provides file discovery and role classification for SIP trees.
//
// The scanner package is responsible for:
//   - Recursively discovering files in a directory tree
//   - Classifying each file as metadata, rep1 original, rep2 derived or schema
//   - Ordering results deterministically so file numbering is stable
//   - Validating that the source root exists and is a directory
//
// Classification follows a directory convention: files ending in .xsd are
// schemas, files under representation/rep1/ and representation/rep2/ are
// originals and derived copies, and files whose name contains "metadata"
// are descriptive metadata. Everything else is reported as skipped.
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
