package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPanelWidth is the inner width of the panel before a window size
// is known.
const DefaultPanelWidth = 40

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Control styles.
var (
	// TitleStyle renders the field name above the control.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// DisplayStyle is the closed summary box.
	DisplayStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1)

	// DisplayDisabledStyle replaces DisplayStyle on a disabled field.
	DisplayDisabledStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Background(colorMantle).
				Padding(0, 1)

	// PlaceholderStyle is used while nothing is committed.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Italic(true)

	// ArrowStyle draws the open/closed marker.
	ArrowStyle = lipgloss.NewStyle().
			Foreground(colorBlue)
)

// Panel styles.
var (
	// PanelStyle borders the open panel.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(0, 1)

	// HighlightStyle marks the keyboard-highlighted entry.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Bold(true)

	// EntryStyle is used for plain entries.
	EntryStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// CommittedMarkStyle marks the committed entry.
	CommittedMarkStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	// SubtextStyle renders an entry's secondary line.
	SubtextStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// NoMatchStyle renders the no-match text.
	NoMatchStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Italic(true)

	// SearchPromptStyle renders the prompt in front of the search bar.
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// SeparatorStyle draws the rule between the search bar and entries.
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)

	// ScrollHintStyle is used for the more-above/more-below markers.
	ScrollHintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom help line.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the help line.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)
)
