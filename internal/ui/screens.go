package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/reflectivei/internal/session"
)

const (
	homeSubheading  = "Build emotional intelligence through self-reflection, mood tracking and journaling."
	assessmentIntro = "Begin your journey by taking a validated Emotional Intelligence assessment. This short " +
		"questionnaire provides a baseline of your self-awareness, empathy and regulation skills."
	assessmentTrust = "ReflectivEI uses science-backed frameworks such as Six Seconds’ SEI and MSCEIT to ensure " +
		"credible results. Your data stays private and secure."
	journalPrompt = "Prompt: Think about a moment today when you felt a strong emotion. What triggered it and " +
		"how did you respond? How would you like to respond differently next time?"
	backLabel = "← Back to Home"
)

func (m Model) View() string {
	w := m.contentWidth()

	top := m.theme.TopBar.Render("ReflectivEI • " + navTabs[tabIndex(m.sess.Current())].label)
	body := lipgloss.NewStyle().Width(w).Padding(0, 1).Render(m.renderScreen(w - 2))

	parts := []string{top, body}
	if m.status != "" {
		parts = append(parts, m.theme.Status.Render(m.status))
	}
	parts = append(parts,
		m.theme.Hint.Render(m.help.View(m.keys.forScreen(m.sess.Current()))),
		m.renderBottomNav(w),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderScreen picks the view for the current screen.
func (m Model) renderScreen(w int) string {
	switch m.sess.Current() {
	case session.Home:
		return m.renderHome(w)
	case session.Assessment:
		return m.renderAssessment(w)
	case session.MoodTracker:
		return m.renderMood(w)
	case session.Journal:
		return m.renderJournal(w)
	case session.Dashboard:
		return m.renderDashboard(w)
	}
	return m.renderHome(w)
}

func (m Model) renderHome(w int) string {
	lines := []string{
		m.renderAsset(session.AssetFor(session.Home), w),
		m.theme.Heading.Render("Welcome to ReflectivEI"),
		m.theme.Subheading.Width(w).Render(homeSubheading),
	}
	for i, c := range homeCards {
		st := m.theme.Card
		if i == m.homeCursor {
			st = m.theme.CardActive
		}
		label := padRight(c.title, w-st.GetHorizontalFrameSize()-1) + m.theme.Arrow.Render("→")
		lines = append(lines, st.Width(w-st.GetHorizontalBorderSize()).Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderAssessment(w int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("EI Assessment"),
		m.theme.Paragraph.Width(w).Render(assessmentIntro),
		m.theme.Paragraph.Width(w).Render(assessmentTrust),
		m.theme.Button.Render("Start Assessment"),
		m.theme.BackLink.Render(backLabel),
	)
}

func (m Model) renderMood(w int) string {
	selected := m.sess.SelectedMood()

	var buttons []string
	for i, mood := range session.Moods() {
		st := m.theme.Mood
		switch {
		case mood == selected:
			st = m.theme.MoodActive
		case i == m.moodCursor:
			st = m.theme.MoodCursor
		}
		label := " " + string(mood) + " "
		if i == m.moodCursor {
			label = "›" + string(mood) + "‹"
		}
		buttons = append(buttons, st.Render(label))
	}

	caption := "Select your mood for today."
	if selected != "" {
		caption = "You selected: " + string(selected)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Mood Tracker"),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		m.theme.Paragraph.Render(caption),
		m.renderAsset(session.AssetFor(session.MoodTracker), w),
		m.theme.Button.Render("Save Mood"),
		m.theme.BackLink.Render(backLabel),
	)
}

func (m Model) renderJournal(w int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Journal"),
		m.theme.Paragraph.Width(w).Render(journalPrompt),
		m.renderAsset(session.AssetFor(session.Journal), w),
		m.theme.Editor.Render(m.editor.View()),
		m.theme.Button.Render("Save Entry"),
		m.theme.BackLink.Render(backLabel),
	)
}

func (m Model) renderDashboard(w int) string {
	stats := session.DashboardStats()
	cardW := w/2 - m.theme.StatCard.GetHorizontalBorderSize()

	var rows []string
	for i := 0; i < len(stats); i += 2 {
		var cells []string
		for _, s := range stats[i:min(i+2, len(stats))] {
			cell := lipgloss.JoinVertical(lipgloss.Center,
				m.theme.StatValue.Render(s.Value),
				m.theme.StatLabel.Render(s.Label),
			)
			cells = append(cells, m.theme.StatCard.Width(cardW).Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Dashboard"),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		m.theme.BackLink.Render(backLabel),
	)
}

func (m Model) renderBottomNav(w int) string {
	itemW := w / len(navTabs)
	cur := m.sess.Current()

	var items []string
	for _, t := range navTabs {
		st := m.theme.NavItem
		if t.target == cur {
			st = m.theme.NavActive
		}
		items = append(items, st.Width(itemW).Render(t.icon+"\n"+t.label))
	}
	return m.theme.Nav.Width(w).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

// renderAsset draws a placeholder frame for a static illustration.
func (m Model) renderAsset(a session.Asset, w int) string {
	if a == session.AssetNone {
		return ""
	}
	return m.theme.Image.Width(w - m.theme.Image.GetHorizontalBorderSize()).Render(fmt.Sprintf("[ %s illustration ]", a))
}

func (m Model) contentWidth() int {
	return max(minWidth, m.width)
}

func padRight(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
