// Package files groups the packages that read a SIP from disk.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: File discovery and role classification
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/premisgen/internal/files/filesystem"
//	    "github.com/vvka-141/premisgen/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(filesystem.NewOSFileSystem())
//	result, err := s.ScanDirectory("./CNR-2025-0001", "./CNR-2025-0001/premis.xml")
//
// Digests are computed separately by the checksum package so a scan stays a
// pure directory listing.
package files
