package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vvka-141/premisgen/internal/files/filesystem"
)

func TestSHA256_Sum(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, n, err := calc.Sum(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("Sum() error = %v", err)
			}
			if digest != tt.expected {
				t.Errorf("Sum() = %s, want %s", digest, tt.expected)
			}
			if n != int64(len(tt.content)) {
				t.Errorf("Sum() size = %d, want %d", n, len(tt.content))
			}
			if want := sumOf(tt.content); digest != want {
				t.Errorf("Sum() = %s, want in-memory digest %s", digest, want)
			}
		})
	}
}

// sumOf hashes content in one call as the reference digest.
func sumOf(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// chunkRecorder records the size of every Read call.
type chunkRecorder struct {
	r     io.Reader
	sizes []int
}

func (c *chunkRecorder) Read(p []byte) (int, error) {
	c.sizes = append(c.sizes, len(p))
	return c.r.Read(p)
}

func TestSHA256_SumStreamsInFixedChunks(t *testing.T) {
	content := strings.Repeat("x", 3*ChunkSize+10)
	rec := &chunkRecorder{r: strings.NewReader(content)}

	digest, n, err := New().Sum(rec)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if n != int64(len(content)) {
		t.Errorf("Sum() size = %d, want %d", n, len(content))
	}
	if digest != sumOf(content) {
		t.Error("streamed digest differs from in-memory digest")
	}
	for _, size := range rec.sizes {
		if size != ChunkSize {
			t.Fatalf("Read called with buffer of %d bytes, want %d", size, ChunkSize)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSHA256_SumPropagatesReadErrors(t *testing.T) {
	_, _, err := New().Sum(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Sum() error = %v, want wrapped read error", err)
	}
}

func TestSHA256_Algorithm(t *testing.T) {
	if got := New().Algorithm(); got != "SHA-256" {
		t.Errorf("Algorithm() = %q, want SHA-256", got)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"a.pdf":             "PDF",
		"A.PDF":             "PDF",
		"metadata_case.xml": "XML",
		"ecourt.xsd":        "XSD",
		"data.json":         "JSON",
		"notes.txt":         "TEXT",
		"image.tiff":        "TIFF",
		"README":            UnknownFormat,
		"dir/trailing.":     UnknownFormat,
	}
	for name, expected := range tests {
		if got := FormatOf(name); got != expected {
			t.Errorf("FormatOf(%q) = %q, want %q", name, got, expected)
		}
	}
}

func TestDetector_Detect(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/sip")
	mfs.AddFile("representation/rep1/data/a.pdf", "hello world!")

	fp, err := NewDetector(mfs, New()).Detect("/sip/representation/rep1/data/a.pdf")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if fp.Algorithm != "SHA-256" {
		t.Errorf("Algorithm = %q", fp.Algorithm)
	}
	if fp.Digest != "7509e5bda0c762d2bac7f90d758b5b2263fa01ccbc542ab5e3df163be08e6ca9" {
		t.Errorf("Digest = %q", fp.Digest)
	}
	if fp.Format != "PDF" {
		t.Errorf("Format = %q, want PDF", fp.Format)
	}
	if fp.Size != 12 {
		t.Errorf("Size = %d, want 12", fp.Size)
	}
}

func TestDetector_DetectMissingFile(t *testing.T) {
	_, err := NewDetector(filesystem.NewMemoryFileSystem("/sip"), New()).Detect("/sip/none.pdf")
	if err == nil {
		t.Error("Detect() should fail for a missing file")
	}
}

func TestNewDetector_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDetector(nil, ...) should panic")
		}
	}()
	NewDetector(nil, New())
}
