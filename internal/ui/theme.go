package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// naja theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMosque  = "🕌"
	IconBeads   = "📿"
	IconBook    = "📖"
	IconMoon    = "🌙"
	IconSparkle = "✨"
	IconFlame   = "🔥"
	IconTarget  = "🎯"
	IconDone    = "✅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconStar    = "⭐"
)

var (
	cPrimary = lipgloss.Color("36")  // teal
	cAccent  = lipgloss.Color("141") // violet
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders a fixed-width bar for progress within a level.
// Zero required means the cap is reached and the bar renders full.
func ProgressBar(current, required, width int) string {
	if width < 4 {
		width = 4
	}
	filled := width
	if required > 0 {
		filled = current * width / required
		if filled < 0 {
			filled = 0
		}
		if filled > width {
			filled = width
		}
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Checkbox renders a goal task checkbox.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// StreakText renders the streak with its flame, muted when zero.
func StreakText(days int) string {
	if days <= 0 {
		return Muted.Render("no streak yet")
	}
	return Warn.Render(fmt.Sprintf("%s %d day streak", IconFlame, days))
}
