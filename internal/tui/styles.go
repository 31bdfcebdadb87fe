package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/buildit/buildit/internal/version"
)

// Application branding constants
const (
	AppName    = "BUILDIT"
	AppTagline = "AI-Powered Robotics Build Planner"
)

// AppVersion returns the application version from the version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	DefaultWidth    = 80 // Used before the first tea.WindowSizeMsg
	DefaultHeight   = 24
	MinContentWidth = 40
	chromeHeight    = 9 // Container border, header, tab bar and footer
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Focused section marker
	FocusMarkerStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	ActiveToggleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	InactiveToggleStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	FocusedButtonStyle = ButtonStyle.
				Background(HighlightColor)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)

	ChipStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	SelectedChipStyle = ChipStyle.
				BorderForeground(ErrorColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	DoneStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ActiveStepStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(SubtleColor).
			PaddingLeft(1)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderError renders an error panel
func RenderError(text string) string {
	return ErrorBoxStyle.Render("✗ " + text)
}

// BuildHeaderContent creates header content with app name, version and the
// backend the client talks to.
func BuildHeaderContent(apiURL string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	tagline := SubtitleStyle.Render(AppTagline)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(apiURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", tagline, "  ", right)
}

// RenderApplicationContainer wraps every screen: bordered full-screen panel,
// header, content and a footer with context-sensitive help.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(keys), apiURL, m.Width, m.Height)
//	}
func RenderApplicationContainer(content, footerText, apiURL string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(apiURL)),
		contentStyle.Render(content),
		footerStyle.Render(footerText),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// contentWidth returns the usable width inside the container.
func contentWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	w := terminalWidth - 6
	if w < MinContentWidth {
		return MinContentWidth
	}
	return w
}
