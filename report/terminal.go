package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

//nolint:gochecknoglobals // Lip Gloss styles are immutable values.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	metricStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	topStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// isWriterTerminal reports whether w is a terminal file descriptor.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RenderTerminal writes the report to w, styled when w is a terminal and as
// plain text otherwise.
func RenderTerminal(w io.Writer, m Model) error {
	if isWriterTerminal(w) {
		return renderStyled(w, m)
	}
	return renderPlain(w, m)
}

func renderPlain(w io.Writer, m Model) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Title)
	fmt.Fprintf(&b, "Goal & Scope\n%s\n%s\n\n", m.Goal, m.Boundary)
	b.WriteString("Life Cycle Inventory (LCI)\n")
	b.WriteString(inventoryTable(m))
	b.WriteString("\nLife Cycle Impact Assessment (LCIA)\n")
	for _, t := range m.Totals {
		fmt.Fprintf(&b, "%s: %s\n", t.Label, t.Formatted())
	}
	fmt.Fprintf(&b, "\nInterpretation\n%s\n", m.TopContributor)
	if m.Equivalency != "" {
		fmt.Fprintf(&b, "%s\n", m.Equivalency)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderStyled(w io.Writer, m Model) error {
	totals := make([]string, 0, len(m.Totals))
	for _, t := range m.Totals {
		totals = append(totals, fmt.Sprintf("%s  %s", t.Label, metricStyle.Render(t.Formatted())))
	}

	interpretation := []string{
		"Greatest GHG contributor: " + topStyle.Render(m.Summary.TopProcess),
	}
	if m.Equivalency != "" {
		interpretation = append(interpretation, m.Equivalency)
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(Title),
		"",
		headingStyle.Render("Goal & Scope"),
		m.Goal,
		m.Boundary,
		"",
		headingStyle.Render("Life Cycle Inventory (LCI)"),
		boxStyle.Render(strings.TrimRight(inventoryTable(m), "\n")),
		"",
		headingStyle.Render("Life Cycle Impact Assessment (LCIA)"),
		strings.Join(totals, "\n"),
		"",
		headingStyle.Render("Interpretation"),
		strings.Join(interpretation, "\n"),
	)

	_, err := fmt.Fprintln(w, out)
	return err
}

// inventoryTable lays the inventory out in aligned columns, with each
// stage's share of the GHG total.
func inventoryTable(m Model) string {
	width := len("Process")
	for _, r := range m.Inventory {
		width = max(width, len(r.Process))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %12s  %18s  %12s  %8s\n", width, "Process", "Energy (MJ)", "GHG (kg CO2-eq)", "Water (L)", "GHG %")
	for i, r := range m.Inventory {
		share := 0.0
		if i < len(m.Contributions) {
			share = m.Contributions[i].Percent
		}
		fmt.Fprintf(&b, "%-*s  %12.2f  %18.2f  %12.2f  %7.1f%%\n", width, r.Process, r.EnergyMJ, r.GHGKgCO2e, r.WaterL, share)
	}
	return b.String()
}
