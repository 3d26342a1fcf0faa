package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "premisgen",
	Short: "PREMIS v3 preservation metadata generator",
	Long: `premisgen walks a Submission Information Package (SIP) directory and writes
a PREMIS v3 record describing it: the intellectual entity, every original,
derived, metadata and schema file with its fixity, the agents and rights
statement, the structural relationships and an optional ingestion event.

Files are classified by convention:
  representation/rep1/...   original files
  representation/rep2/...   derived files
  *metadata*                descriptive metadata
  *.xsd                     schema files

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Source root missing or not a directory
  12 - Output document could not be written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
