package premisgen

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0  // Record generated successfully
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitConfigError         = 10 // Invalid configuration
	ExitSourceMissing       = 11 // Source root missing or not a directory
	ExitSerializationFailed = 12 // Output document could not be written
)

const (
	// PremisNamespace is the target namespace of the PREMIS v3 record schema.
	PremisNamespace = "http://www.loc.gov/premis/v3"

	// PremisPrefix is the namespace prefix used in serialized documents.
	PremisPrefix = "premis"

	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// PremisSchemaLocation is written to xsi:schemaLocation on the root element.
	PremisSchemaLocation = PremisNamespace + " http://www.loc.gov/standards/premis/premis-3-0.xsd"

	// PremisVersion is written to the version attribute of the root element.
	PremisVersion = "3.0"

	// DefaultOutputName is the output file name used when none is given,
	// resolved relative to the source root.
	DefaultOutputName = "premis.xml"

	// DigestAlgorithm names the message digest recorded in fixity sections.
	DigestAlgorithm = "SHA-256"

	// RepresentationDir is the directory holding representation subtrees.
	RepresentationDir = "representation"
)
