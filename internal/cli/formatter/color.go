package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hearthplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// OriginStyle returns the style used for a block origin.
func OriginStyle(origin domain.BlockOrigin) lipgloss.Style {
	switch origin {
	case domain.OriginManual:
		return StyleBlue
	case domain.OriginFixed:
		return StyleYellow
	case domain.OriginGenerated:
		return StyleGreen
	default:
		return StyleDim
	}
}

// OriginTag returns a short colored marker for a block origin.
func OriginTag(origin domain.BlockOrigin) string {
	switch origin {
	case domain.OriginManual:
		return StyleBlue.Render("[m]")
	case domain.OriginFixed:
		return StyleYellow.Render("[f]")
	case domain.OriginGenerated:
		return StyleGreen.Render("[ai]")
	default:
		return StyleDim.Render("[?]")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
