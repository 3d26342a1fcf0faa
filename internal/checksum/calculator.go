package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// ChunkSize is the read buffer size used when streaming content into the hash.
const ChunkSize = 8 * 1024

// Calculator is an interface for computing content digests.
// This abstraction allows for different digest algorithms.
type Calculator interface {
	// Algorithm returns the name recorded as messageDigestAlgorithm.
	Algorithm() string

	// Sum streams r into the digest and returns it hex-encoded,
	// together with the number of bytes read.
	Sum(r io.Reader) (string, int64, error)
}

// SHA256 implements digest calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// Algorithm returns "SHA-256".
func (c SHA256) Algorithm() string {
	return premisgen.DigestAlgorithm
}

// Sum hashes r in fixed-size chunks without buffering the whole content.
func (c SHA256) Sum(r io.Reader) (string, int64, error) {
	h := sha256.New()
	buf := make([]byte, ChunkSize)
	n, err := io.CopyBuffer(h, onlyReader{r}, buf)
	if err != nil {
		return "", n, fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}

// onlyReader hides WriterTo so io.CopyBuffer reads through the fixed buffer.
type onlyReader struct {
	io.Reader
}
