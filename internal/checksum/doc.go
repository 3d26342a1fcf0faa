// Package checksum computes the fixity and format data recorded for each file.
//
// Digests are computed by streaming file content through SHA-256 in fixed
// 8 KiB chunks, so large files are never held in memory. Format labels are
// coarse names derived from the file extension.
//
// # Example Usage
//
//	detector := checksum.NewDetector(filesystem.NewOSFileSystem(), checksum.New())
//	fp, err := detector.Detect("/sip/representation/rep1/data/a.pdf")
//	// fp.Algorithm == "SHA-256", fp.Format == "PDF"
//
// # Thread Safety
//
// SHA256 and Detector are safe for concurrent use by multiple goroutines.
package checksum
