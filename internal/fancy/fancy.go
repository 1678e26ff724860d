// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Common colors for different types of elements
var (
	ColorBlue     = lipgloss.Color("39")  // Blue
	ColorMagenta  = lipgloss.Color("201") // Bright Magenta
	ColorOrange   = lipgloss.Color("208") // Orange
	ColorGreen    = lipgloss.Color("82")  // Green
	ColorYellow   = lipgloss.Color("228") // Yellow
	ColorCyan     = lipgloss.Color("45")  // Cyan
	ColorRed      = lipgloss.Color("196") // Red
	ColorGray     = lipgloss.Color("250") // Light gray
	ColorWhite    = lipgloss.Color("15")  // White
	ColorDarkGray = lipgloss.Color("240") // Dark gray for branches
)

// Common styles that can be used across the application
var (
	// Style for root/main elements
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// Style for section headers
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// Style for descriptive information
	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	// Style for branch connectors in trees
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	// Style for domain names
	DomainStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	// Style for template group IDs
	TemplateStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	// Style for directory paths
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	// Style for entity identifiers
	EntityStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	// Style for error text
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(count),
		),
	)
}

// DomainText styles a domain name
func DomainText(text string) string {
	return DomainStyle.Render(text)
}

// TemplateText styles a template group identifier
func TemplateText(text string) string {
	return TemplateStyle.Render(text)
}

// DirectoryText styles a directory path
func DirectoryText(text string) string {
	return DirectoryStyle.Render(text)
}

// EntityText styles an entity identifier
func EntityText(text string) string {
	return EntityStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// TruncateString truncates a string if it exceeds maxLength
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
