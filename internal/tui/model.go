package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

type dashboardModel struct {
	ctx      context.Context
	profiles *engine.ProfileStore
	goals    *engine.GoalTracker

	width  int
	height int

	profile    engine.GuestProfile
	goal       *engine.GoalConfig
	dayNumber  int
	completion *engine.DailyCompletion

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	profile    engine.GuestProfile
	goal       *engine.GoalConfig
	dayNumber  int
	completion *engine.DailyCompletion
	err        error
}

type toggledMsg struct {
	completion engine.DailyCompletion
	err        error
}

func newDashboardModel(ctx context.Context, profiles *engine.ProfileStore, goals *engine.GoalTracker) dashboardModel {
	return dashboardModel{
		ctx:      ctx,
		profiles: profiles,
		goals:    goals,
		loading:  true,
		lastLog:  "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.profiles.Load(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		goal := m.goals.ActiveGoal(m.ctx)
		msg := loadedMsg{profile: profile, goal: goal}
		if goal != nil {
			if day, err := m.goals.CurrentDayNumber(m.ctx); err == nil {
				msg.dayNumber = day
			}
			completion, err := m.goals.TodayCompletion(m.ctx)
			if err != nil {
				return loadedMsg{err: err}
			}
			msg.completion = completion
		}
		return msg
	}
}

func (m dashboardModel) toggleCmd(index int) tea.Cmd {
	return func() tea.Msg {
		c, err := m.goals.ToggleTask(m.ctx, index)
		return toggledMsg{completion: c, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.profile = msg.profile
		m.goal = msg.goal
		m.dayNumber = msg.dayNumber
		m.completion = msg.completion
		if m.goal != nil && m.selected >= len(m.goal.Tasks) {
			m.selected = len(m.goal.Tasks) - 1
		}
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.completion = &msg.completion
		m.lastLog = fmt.Sprintf("%d/%d done today", msg.completion.DoneCount(), len(msg.completion.TasksCompleted))
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.goal != nil && m.selected < len(m.goal.Tasks)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			if m.goal != nil {
				return m, m.toggleCmd(m.selected)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading {
		return "Loading...\n"
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	var b strings.Builder

	p := m.profile
	progress := p.Progress()
	b.WriteString(ui.Heading(ui.IconMosque, fmt.Sprintf("%s — Level %d %s", p.DisplayName, p.Level, p.Title())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		ui.LabelValue("Barakah", p.BarakahPoints),
		ui.ProgressBar(progress.Current, progress.Required, 24),
		ui.Muted.Render(fmt.Sprintf("%d%%", progress.Percentage)),
	))
	b.WriteString(ui.StreakText(p.HasanatStreak))
	b.WriteString("\n\n")

	if m.goal == nil {
		b.WriteString(ui.Muted.Render("No active goal. Start one with: naja goal set"))
		b.WriteString("\n")
	} else {
		icon := m.goal.Icon
		if icon == "" {
			icon = ui.IconTarget
		}
		b.WriteString(ui.H2.Render(fmt.Sprintf("%s %s — day %d of %d", icon, m.goal.Title, m.dayNumber, m.goal.TimeframeDays)))
		b.WriteString("\n")
		for i, task := range m.goal.Tasks {
			done := false
			if m.completion != nil && i < len(m.completion.TasksCompleted) {
				done = m.completion.TasksCompleted[i]
			}
			line := fmt.Sprintf("%s %s", ui.Checkbox(done), task.Label)
			if i == m.selected {
				line = ui.SelectedRow.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("space: toggle  j/k: move  r: reload  q: quit"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}
