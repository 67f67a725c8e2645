// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fareline/fareline/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#F4A261")
	// AcceptColor marks offers worth taking.
	AcceptColor = lipgloss.Color("#2A9D8F")
	// RejectColor marks offers below the driver's floors.
	RejectColor = lipgloss.Color("#E76F51")
	// SubtleColor is used for secondary text.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// AcceptStyle formats accept verdicts.
	AcceptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AcceptColor)

	// RejectStyle formats reject verdicts.
	RejectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RejectColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	// BoxStyle is used for bordered report sections.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)
)

// Icons.
const (
	AcceptIcon = "✓"
	RejectIcon = "✗"
	CarIcon    = "🚗"
)

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(CarIcon + " " + title)
}

// FormatVerdict renders a decision as a colored ACCEPT/REJECT badge.
func FormatVerdict(d model.Decision) string {
	if d == model.DecisionAccept {
		return AcceptStyle.Render(AcceptIcon + " ACCEPT")
	}
	return RejectStyle.Render(RejectIcon + " REJECT")
}

// RenderBox renders content in a titled, bordered box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	))
}
