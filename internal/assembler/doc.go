// Package assembler builds a PREMIS record from classified SIP files.
//
// The assembler never touches the filesystem. Callers hand it FileEntry
// values whose fingerprints are already computed, and a Sink that receives
// the finished root exactly once.
//
// A build runs in phases:
//
//	root                 create the premis root (fallback: empty root)
//	intellectual-object  intellectual entity with CNR identifier
//	agents-rights        system agent, depositor, one rights section
//	objects              one file object per metadata/rep1/rep2/schema file
//	relationships        structural relationship on the intellectual entity
//	events               optional ingestion event
//	summary              section counts
//
// Each phase is guarded: a failure inside a phase is recorded as a warning
// and the build continues with the next phase.
package assembler
