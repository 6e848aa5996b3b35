package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Border   lipgloss.Color
	Header   lipgloss.Style
	Input    lipgloss.Style
	Divider  lipgloss.Style
	Neutral  lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
	Note     lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("63"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("62"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme and reports whether name was known.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}

// IndicatorStyle maps an indicator level to the active theme's style.
func (t Theme) IndicatorStyle(level Level) lipgloss.Style {
	switch level {
	case LevelCritical:
		return t.Critical
	case LevelWarning:
		return t.Warning
	default:
		return t.Neutral
	}
}
