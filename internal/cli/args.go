package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireSourceRoot validates that exactly one source_root argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireSourceRoot(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <source_root>

Usage: %s

Example:
  %s ./CNR-2025-0001`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireSourceRootAndOutput validates a source_root argument followed by
// an optional output_file argument.
func RequireSourceRootAndOutput(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <source_root>

Usage: %s

Example:
  %s ./CNR-2025-0001 ./CNR-2025-0001/premis.xml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts between 1 and 2 arg(s), received %d", len(args))
	}
	return nil
}
