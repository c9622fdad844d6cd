package ui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	UserSide  lipgloss.Color
	BotSide   lipgloss.Color
}

var palettes = map[string]palette{
	"clinic": {
		Text:      lipgloss.Color("#cdd6f4"),
		Muted:     lipgloss.Color("#a6adc8"),
		Accent:    lipgloss.Color("#94e2d5"),
		AccentAlt: lipgloss.Color("#f38ba8"),
		Border:    lipgloss.Color("#585b70"),
		Success:   lipgloss.Color("#a6e3a1"),
		Warning:   lipgloss.Color("#f9e2af"),
		UserSide:  lipgloss.Color("#89b4fa"),
		BotSide:   lipgloss.Color("#94e2d5"),
	},
	"marigold": {
		Text:      lipgloss.Color("#ebdbb2"),
		Muted:     lipgloss.Color("#a89984"),
		Accent:    lipgloss.Color("#fabd2f"),
		AccentAlt: lipgloss.Color("#d3869b"),
		Border:    lipgloss.Color("#665c54"),
		Success:   lipgloss.Color("#b8bb26"),
		Warning:   lipgloss.Color("#fe8019"),
		UserSide:  lipgloss.Color("#83a598"),
		BotSide:   lipgloss.Color("#fabd2f"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["clinic"]
}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	panel   lipgloss.Style
	userMsg lipgloss.Style
	botMsg  lipgloss.Style
	help    lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		label:   lipgloss.NewStyle().Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		err:     lipgloss.NewStyle().Foreground(p.AccentAlt),
		success: lipgloss.NewStyle().Foreground(p.Success),
		warning: lipgloss.NewStyle().Foreground(p.Warning),
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		userMsg: lipgloss.NewStyle().Foreground(p.UserSide),
		botMsg:  lipgloss.NewStyle().Foreground(p.BotSide),
		help:    lipgloss.NewStyle().Foreground(p.Muted),
	}
}
