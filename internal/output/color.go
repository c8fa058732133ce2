// Package output provides styled terminal rendering helpers for focussphere.
package output

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme renders with.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
}

// DarkPalette suits dark terminal backgrounds.
var DarkPalette = Palette{
	Primary: lipgloss.Color("#818cf8"),
	Success: lipgloss.Color("#66bb6a"),
	Error:   lipgloss.Color("#ef5350"),
	Warning: lipgloss.Color("#fff59d"),
	Muted:   lipgloss.Color("#888888"),
	Text:    lipgloss.Color("#ffffff"),
}

// LightPalette suits light terminal backgrounds.
var LightPalette = Palette{
	Primary: lipgloss.Color("#4f46e5"),
	Success: lipgloss.Color("#2e7d32"),
	Error:   lipgloss.Color("#c62828"),
	Warning: lipgloss.Color("#b26a00"),
	Muted:   lipgloss.Color("#6b7280"),
	Text:    lipgloss.Color("#111827"),
}

// Color values of the active palette.
var (
	ColorPrimary lipgloss.Color
	ColorSuccess lipgloss.Color
	ColorError   lipgloss.Color
	ColorWarning lipgloss.Color
	ColorMuted   lipgloss.Color
	ColorText    lipgloss.Color
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader lipgloss.Style

	// StyleSuccess is used for positive values.
	StyleSuccess lipgloss.Style

	// StyleError is used for negative values.
	StyleError lipgloss.Style

	// StyleWarning is used for cautionary values.
	StyleWarning lipgloss.Style

	// StyleMuted is used for de-emphasized text.
	StyleMuted lipgloss.Style

	// StyleBold is used for emphasized text.
	StyleBold lipgloss.Style

	// StyleLabel is used for metric labels.
	StyleLabel lipgloss.Style

	// StyleValue is used for metric values.
	StyleValue lipgloss.Style
)

var (
	noColor bool
	palette = DarkPalette
)

func init() {
	applyStyles()
}

func applyStyles() {
	ColorPrimary = palette.Primary
	ColorSuccess = palette.Success
	ColorError = palette.Error
	ColorWarning = palette.Warning
	ColorMuted = palette.Muted
	ColorText = palette.Text

	if noColor {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
		StyleValue = plain.Width(12)
		return
	}

	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(24)
	StyleValue = lipgloss.NewStyle().Bold(true).Width(12)
}

// SetNoColor disables or enables color output globally.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles()
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// SetTheme switches between the dark and light palettes.
func SetTheme(dark bool) {
	if dark {
		palette = DarkPalette
	} else {
		palette = LightPalette
	}
	applyStyles()
}

// LevelStyle maps an activity or budget level to a style.
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "high", "ok":
		return StyleSuccess
	case "medium", "warning":
		return StyleWarning
	default:
		return StyleError
	}
}

// Swatch renders a small block in the given hex color, e.g. an event tag.
func Swatch(hex string) string {
	if noColor || hex == "" {
		return "■"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
