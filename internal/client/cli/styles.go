package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
)

// styles is the console palette for one theme.
type styles struct {
	title  lipgloss.Style
	accent lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
	border lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	accent, text, muted := lipgloss.Color("#002366"), lipgloss.Color("#1e293b"), lipgloss.Color("#64748b")
	if theme == models.ThemeDark {
		accent, text, muted = lipgloss.Color("#FF8C00"), lipgloss.Color("#f8fafc"), lipgloss.Color("#94a3b8")
	}

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		accent: lipgloss.NewStyle().Foreground(accent),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706")),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626")),
		muted:  lipgloss.NewStyle().Foreground(muted),
		border: lipgloss.NewStyle().Foreground(text),
	}
}

// level colours a stock or status value.
func (s styles) level(v string) string {
	switch v {
	case string(models.StockCritical), string(models.TaskUrgent), string(models.TaskBlocked), string(models.ProjectAttentionNeeded):
		return s.err.Render(v)
	case string(models.StockLow), string(models.TaskPending), string(models.ProjectAwaitingMaterials):
		return s.warn.Render(v)
	case string(models.StockSufficient), string(models.TaskCompleted), string(models.ProjectCompleted):
		return s.ok.Render(v)
	default:
		return v
	}
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)
