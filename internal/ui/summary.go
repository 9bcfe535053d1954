package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/lineman/model"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	pathStyle    = lipgloss.NewStyle()
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderSummary formats the end-of-run report: the cleaned, skipped and
// traversal-error lists followed by a one-line count.
func RenderSummary(s model.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("--- Clean Summary ---"))
	b.WriteString("\n")
	if s.Message != "" {
		b.WriteString(s.Message)
		b.WriteString("\n")
	}

	if len(s.Cleaned) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Cleaned %d file(s):", len(s.Cleaned))))
		b.WriteString("\n")
		for _, f := range s.Cleaned {
			b.WriteString(fmt.Sprintf("  - %s\n", pathStyle.Render(f)))
		}
	}
	if len(s.Skipped) > 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Skipped %d file(s):", len(s.Skipped))))
		b.WriteString("\n")
		writeFailures(&b, s.Skipped)
	}
	if len(s.Errors) > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Traversal errors (%d):", len(s.Errors))))
		b.WriteString("\n")
		writeFailures(&b, s.Errors)
	}
	if s.Empty() {
		b.WriteString(faintStyle.Render("Nothing to clean."))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render(fmt.Sprintf(
		"%d checked, %d cleaned, %d skipped, %d errors in %s",
		s.Checked, len(s.Cleaned), len(s.Skipped), len(s.Errors), s.Duration.Round(time.Millisecond),
	)))
	b.WriteString("\n")
	return b.String()
}

func writeFailures(b *strings.Builder, failures []model.Failure) {
	for _, f := range failures {
		b.WriteString(fmt.Sprintf("  - %s", pathStyle.Render(f.Path)))
		if f.Reason != "" {
			b.WriteString(faintStyle.Render(" (" + f.Reason + ")"))
		}
		b.WriteString("\n")
	}
}

// PrintSummary writes the rendered report to w.
func PrintSummary(w io.Writer, s model.Summary) {
	fmt.Fprint(w, RenderSummary(s))
}
