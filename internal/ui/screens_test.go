package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/reflectivei/internal/session"
)

func TestEveryScreenRenders(t *testing.T) {
	titles := map[session.Screen]string{
		session.Home:        "Welcome to ReflectivEI",
		session.Assessment:  "Start Assessment",
		session.MoodTracker: "Mood Tracker",
		session.Journal:     "Save Entry",
		session.Dashboard:   "Day Streak",
	}
	assert.Len(t, titles, len(session.Screens()))

	for _, sc := range session.Screens() {
		s := session.New()
		s.Navigate(sc)
		out := NewModel(s).View()
		assert.Contains(t, out, titles[sc], sc.String())
		if sc != session.Home {
			assert.Contains(t, out, backLabel, sc.String())
		}
	}
}

func TestHomeShowsAllCards(t *testing.T) {
	out := newTestModel().View()
	for _, c := range homeCards {
		assert.Contains(t, out, c.title)
	}
	assert.Contains(t, out, "hero illustration")
}

func TestBottomNavOnEveryScreen(t *testing.T) {
	for _, sc := range session.Screens() {
		s := session.New()
		s.Navigate(sc)
		out := NewModel(s).View()
		for _, tab := range navTabs {
			assert.Contains(t, out, tab.label)
		}
	}
}

func TestDashboardShowsFixedStats(t *testing.T) {
	m := press(t, newTestModel(), "5")
	out := m.View()
	for _, st := range session.DashboardStats() {
		assert.Contains(t, out, st.Label)
		assert.Contains(t, out, st.Value)
	}
}

func TestMoodScreenCaption(t *testing.T) {
	m := press(t, newTestModel(), "3")
	assert.Contains(t, m.View(), "Select your mood for today.")
	assert.Contains(t, m.View(), "mood illustration")

	m = press(t, m, "right", "right", "enter")
	assert.Contains(t, m.View(), "You selected: 😐")
}

func TestStatusLineRendered(t *testing.T) {
	m := press(t, newTestModel(), "3", "ctrl+s")
	assert.Contains(t, m.View(), "Mood Saved")
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mocha", ThemeByName("mocha").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("neon").Name)

	m := NewModel(session.New(), WithTheme(MonoTheme))
	assert.Equal(t, "mono", m.theme.Name)
	assert.Contains(t, m.View(), "Welcome to ReflectivEI")
}

func TestNarrowWindowStillRenders(t *testing.T) {
	next, _ := newTestModel().Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	m := next.(Model)
	for _, k := range []string{"2", "3", "5", "4"} {
		m = press(t, m, k)
		assert.NotEmpty(t, m.View())
	}
}
