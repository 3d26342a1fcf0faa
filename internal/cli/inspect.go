package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vvka-141/premisgen/internal/files/scanner"
	"github.com/vvka-141/premisgen/internal/tui"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <source_root>",
	Short: "Show how the files of a SIP directory are classified",
	Long: `Inspect walks a SIP directory and prints the role assigned to every file,
in the order the files appear in the record. Nothing is read or written
beyond directory listings.

Example:
  premisgen inspect ./CNR-2025-0001`,
	Args: RequireSourceRoot,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	s := scanner.NewScanner()

	if err := s.ValidateSourceRoot(sourcePath); err != nil {
		return err
	}
	scan, err := s.ScanDirectory(sourcePath, filepath.Join(sourcePath, premisgen.DefaultOutputName))
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", sourcePath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, inspectReport(sourcePath, scan).Render(tui.IsStyled(out)))
	return nil
}

func inspectReport(sourcePath string, scan premisgen.ScanResult) tui.Report {
	report := tui.Report{
		Title:  fmt.Sprintf("%s: %d classified file(s)", sourcePath, len(scan.Files)),
		Footer: fmt.Sprintf("%d file(s) skipped", len(scan.Skipped)),
	}
	for _, f := range scan.Files {
		report.Rows = append(report.Rows, tui.Row{Label: string(f.Role), Value: f.RelativePath})
	}
	for _, rel := range scan.Skipped {
		report.Warnings = append(report.Warnings, rel+" matches no role")
	}
	return report
}
