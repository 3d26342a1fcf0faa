package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/premisgen/internal/files/filesystem"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

const (
	rep1Prefix = premisgen.RepresentationDir + "/rep1/"
	rep2Prefix = premisgen.RepresentationDir + "/rep2/"
)

// Scanner discovers files of a SIP tree and classifies them by role.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner.
// Uses OS filesystem by default.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// ScanDirectory recursively scans a directory and classifies every regular file.
//
// Parameters:
//   - sourcePath: Root directory to scan
//   - excludePaths: Files to leave out, typically the output document
//
// Returns:
//   - premisgen.ScanResult: Classified files ordered by role then path
//   - error: Any error encountered during scanning
func (s *Scanner) ScanDirectory(sourcePath string, excludePaths ...string) (premisgen.ScanResult, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return premisgen.ScanResult{}, fmt.Errorf("failed to open directory: %w", err)
	}

	excluded := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		if p != "" {
			excluded[normalize(p)] = true
		}
	}

	var result premisgen.ScanResult

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		// Skip directories
		if file.Info().IsDir() {
			return nil
		}

		if excluded[normalize(file.Path())] {
			return nil
		}

		relPath := filepath.ToSlash(file.RelativePath())
		role, ok := Classify(relPath)
		if !ok {
			result.Skipped = append(result.Skipped, relPath)
			return nil
		}

		name := file.Info().Name()
		result.Files = append(result.Files, premisgen.FileEntry{
			Path:         file.Path(),
			RelativePath: relPath,
			Name:         name,
			Extension:    filepath.Ext(name),
			Role:         role,
			Fingerprint:  premisgen.Fingerprint{Size: file.Info().Size()},
		})
		return nil
	})

	if err != nil {
		return premisgen.ScanResult{}, err
	}

	SortEntries(result.Files)
	sort.Strings(result.Skipped)
	return result, nil
}

// Classify assigns a role to a forward-slash path relative to the SIP root.
// Schema files win over directory placement, and representation directories
// win over the metadata name heuristic.
func Classify(relPath string) (premisgen.FileRole, bool) {
	lower := strings.ToLower(strings.TrimPrefix(relPath, "./"))
	base := lower[strings.LastIndex(lower, "/")+1:]

	switch {
	case strings.HasSuffix(base, ".xsd"):
		return premisgen.RoleSchema, true
	case strings.HasPrefix(lower, rep1Prefix) || strings.Contains(lower, "/"+rep1Prefix):
		return premisgen.RoleOriginal, true
	case strings.HasPrefix(lower, rep2Prefix) || strings.Contains(lower, "/"+rep2Prefix):
		return premisgen.RoleDerived, true
	case strings.Contains(base, "metadata"):
		return premisgen.RoleMetadata, true
	}
	return "", false
}

// SortEntries orders entries by role (see premisgen.Roles), then by
// case-insensitive relative path, so numbering is deterministic.
func SortEntries(entries []premisgen.FileEntry) {
	rank := make(map[premisgen.FileRole]int, len(premisgen.Roles))
	for i, role := range premisgen.Roles {
		rank[role] = i
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if rank[a.Role] != rank[b.Role] {
			return rank[a.Role] < rank[b.Role]
		}
		return strings.ToLower(a.RelativePath) < strings.ToLower(b.RelativePath)
	})
}

// ValidateSourceRoot checks that sourcePath exists and is a directory.
func (s *Scanner) ValidateSourceRoot(sourcePath string) error {
	info, err := s.fsProvider.Stat(sourcePath)
	if err != nil {
		return fmt.Errorf("%s: %w", sourcePath, premisgen.ErrSourceNotFound)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", sourcePath, premisgen.ErrSourceNotFound)
	}

	return nil
}

func normalize(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.ToSlash(filepath.Clean(p))
}

// Verify Scanner implements the interface at compile time
var _ premisgen.FileScanner = (*Scanner)(nil)
