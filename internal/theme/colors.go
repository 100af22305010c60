package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Tree colors
const (
	ColorDirectory Color = "33"  // Blue
	ColorFile      Color = "250" // Default text
	ColorLanguage  Color = "141" // Purple
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green
	ColorVersion   Color = "240" // Dark gray
)
