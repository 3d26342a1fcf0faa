package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one label/value line of a report.
type Row struct {
	Label string
	Value string
}

// Report is a titled block of rows followed by optional notes.
type Report struct {
	Title string
	Rows  []Row

	// Warnings are rendered after the rows, one per line.
	Warnings []string

	// Footer is a closing line, e.g. where the record was written.
	Footer string
}

// Render formats r. Styled output uses lipgloss; plain output is
// "label: value" lines suitable for logs and pipes.
func (r Report) Render(styled bool) string {
	if styled {
		return r.renderStyled()
	}
	return r.renderPlain()
}

func (r Report) width() int {
	w := 0
	for _, row := range r.Rows {
		if n := len(row.Label) + 1; n > w {
			w = n
		}
	}
	return w
}

func (r Report) renderPlain() string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteString("\n")
	}
	w := r.width()
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "  %-*s  %s\n", w, row.Label+":", row.Value)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(&b, "  warning: %s\n", warn)
	}
	if r.Footer != "" {
		b.WriteString(r.Footer)
		b.WriteString("\n")
	}
	return b.String()
}

func (r Report) renderStyled() string {
	var lines []string
	if r.Title != "" {
		lines = append(lines, TitleStyle.Render(r.Title), "")
	}
	w := r.width()
	for _, row := range r.Rows {
		label := LabelStyle.Width(w + 1).Render(row.Label + ":")
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, ValueStyle.Render(row.Value)))
	}
	if len(r.Warnings) > 0 {
		lines = append(lines, "")
		for _, warn := range r.Warnings {
			lines = append(lines, WarningStyle.Render(SymbolWarning+" "+warn))
		}
	}
	out := BoxStyle.Render(strings.Join(lines, "\n"))
	if r.Footer != "" {
		out += "\n" + SuccessStyle.Render(SymbolCheck+" "+r.Footer)
	}
	return out + "\n"
}
