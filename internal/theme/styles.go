package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Key/value output styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Result styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Workspace tree styles
var (
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorDirectory).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(ColorFile)

	LanguageStyle = lipgloss.NewStyle().
			Foreground(ColorLanguage)

	TreeBranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginRight(1)
)
