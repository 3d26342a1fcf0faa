package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vvka-141/premisgen/internal/services"
	"github.com/vvka-141/premisgen/internal/tui"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// summaryReport describes a finished generation run.
func summaryReport(cfg premisgen.GenerateConfig, result *services.GenerateResult) tui.Report {
	s := result.Record.Summary
	report := tui.Report{
		Title: "PREMIS record " + cfg.SIPID,
		Rows: []tui.Row{
			{Label: "Source", Value: cfg.SourcePath},
			{Label: "Files", Value: strconv.Itoa(s.Files)},
			{Label: "Agents", Value: strconv.Itoa(s.Agents)},
			{Label: "Rights", Value: strconv.Itoa(s.Rights)},
			{Label: "Events", Value: strconv.Itoa(s.Events)},
			{Label: "Relationships", Value: strconv.Itoa(s.Relationships)},
			{Label: "Skipped", Value: strconv.Itoa(len(result.Scan.Skipped))},
		},
		Warnings: result.Record.Warnings(),
	}
	if !cfg.DryRun {
		report.Footer = "Wrote " + result.OutputPath
	}
	return report
}

func printSummary(w io.Writer, cfg premisgen.GenerateConfig, result *services.GenerateResult) {
	if result == nil || result.Record == nil {
		return
	}
	fmt.Fprint(w, summaryReport(cfg, result).Render(tui.IsStyled(w)))
}
