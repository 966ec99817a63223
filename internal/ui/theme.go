package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name string

	TopBar     lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Title      lipgloss.Style
	Paragraph  lipgloss.Style

	Card       lipgloss.Style
	CardActive lipgloss.Style
	Arrow      lipgloss.Style

	Button   lipgloss.Style
	BackLink lipgloss.Style

	Mood       lipgloss.Style
	MoodActive lipgloss.Style
	MoodCursor lipgloss.Style

	Editor lipgloss.Style
	Image  lipgloss.Style

	StatCard  lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style

	Nav       lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	Status lipgloss.Style
	Hint   lipgloss.Style
}

type palette struct {
	accent, accentSoft, accentStrong lipgloss.Color
	text, muted, subtle, surface     lipgloss.Color
	success                          lipgloss.Color
}

func newTheme(name string, p palette) Theme {
	rounded := lipgloss.RoundedBorder()
	return Theme{
		Name:       name,
		TopBar:     lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginBottom(1),
		Subheading: lipgloss.NewStyle().Foreground(p.muted).MarginBottom(1),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginBottom(1),
		Paragraph:  lipgloss.NewStyle().Foreground(p.text).MarginBottom(1),

		Card:       lipgloss.NewStyle().Border(rounded).BorderForeground(p.subtle).Padding(0, 2),
		CardActive: lipgloss.NewStyle().Border(rounded).BorderForeground(p.accent).Background(p.accentSoft).Padding(0, 2).Bold(true),
		Arrow:      lipgloss.NewStyle().Foreground(p.accent),

		Button:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(p.accent).Padding(0, 3).MarginBottom(1),
		BackLink: lipgloss.NewStyle().Foreground(p.accent),

		Mood:       lipgloss.NewStyle().Border(rounded).BorderForeground(p.surface).Padding(0, 1),
		MoodActive: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(p.accentStrong).Padding(0, 1),
		MoodCursor: lipgloss.NewStyle().Border(rounded).BorderForeground(p.accent).Padding(0, 1),

		Editor: lipgloss.NewStyle().Border(rounded).BorderForeground(p.subtle).MarginBottom(1),
		Image:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.subtle).Foreground(p.muted).Align(lipgloss.Center).MarginBottom(1),

		StatCard:  lipgloss.NewStyle().Border(rounded).BorderForeground(p.surface).Align(lipgloss.Center).Padding(1, 1),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(p.accentStrong),
		StatLabel: lipgloss.NewStyle().Foreground(p.text),

		Nav:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(p.subtle),
		NavItem:   lipgloss.NewStyle().Foreground(p.muted).Align(lipgloss.Center),
		NavActive: lipgloss.NewStyle().Foreground(p.accent).Bold(true).Align(lipgloss.Center),

		Status: lipgloss.NewStyle().Bold(true).Foreground(p.success).Padding(0, 1),
		Hint:   lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
}

var (
	DefaultTheme = newTheme("default", palette{
		accent:       "#0070f3",
		accentSoft:   "#e8effe",
		accentStrong: "#005dd1",
		text:         "#1c1c1e",
		muted:        "#888888",
		subtle:       "#cccccc",
		surface:      "#d2e0fd",
		success:      "#1a7f37",
	})
	MochaTheme = newTheme("mocha", palette{
		accent:       "#89B4FA",
		accentSoft:   "#313244",
		accentStrong: "#CBA6F7",
		text:         "#CDD6F4",
		muted:        "#A6ADC8",
		subtle:       "#585B70",
		surface:      "#45475A",
		success:      "#A6E3A1",
	})
	MonoTheme = newTheme("mono", palette{
		accent:       "15",
		accentSoft:   "236",
		accentStrong: "15",
		text:         "252",
		muted:        "245",
		subtle:       "240",
		surface:      "238",
		success:      "15",
	})
)

// ThemeByName falls back to DefaultTheme for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "mocha":
		return MochaTheme
	case "mono":
		return MonoTheme
	default:
		return DefaultTheme
	}
}
