package premisgen

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// FileRole classifies a file of the SIP by directory convention.
type FileRole string

const (
	// RoleMetadata marks descriptive metadata files (name contains "metadata").
	RoleMetadata FileRole = "metadata"

	// RoleOriginal marks files under representation/rep1 (originals).
	RoleOriginal FileRole = "rep1"

	// RoleDerived marks files under representation/rep2 (derived copies).
	RoleDerived FileRole = "rep2"

	// RoleSchema marks .xsd files shipped with the SIP.
	RoleSchema FileRole = "schema"
)

// Roles lists the roles in the order their object sections are emitted.
var Roles = []FileRole{RoleMetadata, RoleOriginal, RoleDerived, RoleSchema}

// FileEntry is one classified file of the source tree.
type FileEntry struct {
	// Path is the location used to read the file through the filesystem provider.
	Path string

	// RelativePath is the forward-slash path relative to the source root.
	RelativePath string

	// Name is the base file name.
	Name string

	// Extension is the file extension including the leading dot.
	Extension string

	// Role is the classification derived from the path.
	Role FileRole

	// Fingerprint holds the digest, format label and size of the content.
	Fingerprint Fingerprint
}

// ScanResult contains the classified files of a source tree.
type ScanResult struct {
	// Files are ordered by role (see Roles), then by relative path.
	Files []FileEntry

	// Skipped lists relative paths of files that matched no role.
	Skipped []string
}

// ByRole returns the files with the given role, preserving order.
func (r ScanResult) ByRole(role FileRole) []FileEntry {
	var out []FileEntry
	for _, f := range r.Files {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}

// FileScanner discovers and classifies the files of a SIP.
type FileScanner interface {
	// ScanDirectory walks sourcePath. Files whose path equals one of
	// excludePaths are left out entirely.
	ScanDirectory(sourcePath string, excludePaths ...string) (ScanResult, error)
}

// Fingerprint is what the digest/format detector reports for one file.
// The assembler treats Digest and Format as opaque strings.
type Fingerprint struct {
	Algorithm string
	Digest    string
	Format    string
	Size      int64
}

// Agent identifies an agent recorded in the PREMIS document.
type Agent struct {
	IdentifierType  string
	IdentifierValue string
	Name            string
	Type            string
}

// Rights describes the single rights statement of the record.
type Rights struct {
	Basis   string
	Granted string
}

// CreatingApplication describes the application credited with creating files.
type CreatingApplication struct {
	Name        string
	DateCreated string
}

// GenerateConfig contains all parameters needed to generate one record.
type GenerateConfig struct {
	// SourcePath is the SIP root directory.
	SourcePath string

	// OutputPath is the destination document. Written atomically.
	OutputPath string

	// SIPID is the intellectual entity identifier (CNR). Defaults to the
	// base name of SourcePath.
	SIPID string

	// SystemAgent is the software agent credited with the record.
	SystemAgent Agent

	// Depositor is the human agent who deposited the SIP.
	Depositor Agent

	// Rights is the rights statement attached to the record.
	Rights Rights

	// CreatingApplication is recorded on metadata and derived objects.
	CreatingApplication CreatingApplication

	// IngestionEvent adds an ingestion event section when true.
	IngestionEvent bool

	// DryRun renders the document to the configured writer instead of a file.
	DryRun bool

	// Now is the clock used for receiving dates and event times.
	Now func() time.Time

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" && !c.DryRun {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(c.SIPID) == "" {
		errs = append(errs, fmt.Errorf("SIPID is required: %w", ErrInvalidConfig))
	}

	if c.SystemAgent.IdentifierValue == "" {
		errs = append(errs, fmt.Errorf("system agent identifier is required: %w", ErrInvalidConfig))
	}

	if c.Depositor.IdentifierValue == "" {
		errs = append(errs, fmt.Errorf("depositor identifier is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Clock returns the configured clock, falling back to time.Now.
func (c *GenerateConfig) Clock() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return time.Now
}

// DefaultSystemAgent is the software agent used when no configuration overrides it.
var DefaultSystemAgent = Agent{
	IdentifierType:  "system",
	IdentifierValue: "JTDR",
	Name:            "JTDR",
	Type:            "software",
}

// DefaultDepositor is the human agent used when no configuration overrides it.
var DefaultDepositor = Agent{
	IdentifierType:  "depositor",
	IdentifierValue: "uploader@example.org",
	Name:            "Case Uploader",
	Type:            "human",
}

// DefaultRights is the rights statement used when no configuration overrides it.
var DefaultRights = Rights{
	Basis:   "statute",
	Granted: "Access restricted to authorized user",
}

// DefaultCreatingApplication is used when no configuration overrides it.
var DefaultCreatingApplication = CreatingApplication{
	Name:        "JTDR",
	DateCreated: "2024-12-07T00:00:00+05:30",
}

// Fingerprinter computes the fingerprint of one file.
type Fingerprinter interface {
	Detect(path string) (Fingerprint, error)
}
