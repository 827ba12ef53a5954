package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: node names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" node status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "replaced" node status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" node status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (node names, bundle paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, tree edges, ops).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings such as the tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// Node status constants.
const (
	StatusCreated  = "created"
	StatusReplaced = "replaced"
	StatusFailed   = "failed"
)

// StatusStyle returns the style for a node status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusReplaced:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNodeColumnWidth keeps status words aligned.
const minNodeColumnWidth = 48

// FormatNodeLine renders a node path with a right-aligned, colored status.
//
// Format: n:<relative/path/name.node>  <status>
func FormatNodeLine(path, status string) string {
	padding := minNodeColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("n:") +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
