package checksum

import (
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/premisgen/internal/files/filesystem"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// formatLabels maps lower-case extensions to coarse format names.
var formatLabels = map[string]string{
	".pdf":  "PDF",
	".xml":  "XML",
	".xsd":  "XSD",
	".json": "JSON",
	".txt":  "TEXT",
}

// UnknownFormat is reported for files without an extension.
const UnknownFormat = "UNKNOWN"

// FormatOf returns the format label for a file name.
func FormatOf(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if label, ok := formatLabels[ext]; ok {
		return label
	}
	if ext == "" || ext == "." {
		return UnknownFormat
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

// Detector reports digest, format and size for files of a provider.
type Detector struct {
	fs   filesystem.FileSystemProvider
	calc Calculator
}

// NewDetector creates a detector reading through fsProvider.
// Panics if fsProvider or calc is nil (programming error).
func NewDetector(fsProvider filesystem.FileSystemProvider, calc Calculator) *Detector {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if calc == nil {
		panic("calc cannot be nil")
	}
	return &Detector{fs: fsProvider, calc: calc}
}

// Detect streams the file at filePath through the digest.
func (d *Detector) Detect(filePath string) (premisgen.Fingerprint, error) {
	rc, err := d.fs.OpenFile(filePath)
	if err != nil {
		return premisgen.Fingerprint{}, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer rc.Close()

	digest, size, err := d.calc.Sum(rc)
	if err != nil {
		return premisgen.Fingerprint{}, fmt.Errorf("failed to digest %s: %w", filePath, err)
	}

	return premisgen.Fingerprint{
		Algorithm: d.calc.Algorithm(),
		Digest:    digest,
		Format:    FormatOf(filePath),
		Size:      size,
	}, nil
}

var _ premisgen.Fingerprinter = (*Detector)(nil)
