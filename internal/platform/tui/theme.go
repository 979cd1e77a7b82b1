package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-snake/internal/config"
	"github.com/vovakirdan/retro-snake/internal/core"
)

// Styles maps color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds styles from the theme. Empty theme entries fall back to
// the terminal's default foreground.
func NewStyles(theme config.ThemeConfig) Styles {
	fg := func(c string) lipgloss.Style {
		if c == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorTitle:   fg(theme.Title).Bold(true),
		core.ColorBorder:  fg(theme.Border),
		core.ColorSnake:   fg(theme.Snake),
		core.ColorHead:    fg(theme.Head),
		core.ColorFood:    fg(theme.Food),
		core.ColorScore:   fg(theme.Score).Bold(true),
		core.ColorOverlay: fg(theme.Overlay),
	}
}

// Style returns the style for c, or the default style for unknown roles.
func (s Styles) Style(c core.Color) lipgloss.Style {
	if style, ok := s[c]; ok {
		return style
	}
	return s[core.ColorDefault]
}
