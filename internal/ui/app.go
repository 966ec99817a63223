package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ramanasai/reflectivei/internal/session"
)

const (
	defaultWidth  = 72
	defaultHeight = 32
	minWidth      = 40
)

// homeCards are the home menu entries, in display order.
var homeCards = []struct {
	title  string
	target session.Screen
}{
	{"EI Assessment", session.Assessment},
	{"Mood Tracker", session.MoodTracker},
	{"Journal", session.Journal},
	{"Dashboard", session.Dashboard},
}

// navTabs is the bottom navigation bar; index+1 is the jump key.
var navTabs = []struct {
	target session.Screen
	label  string
	icon   string
}{
	{session.Home, "Home", "🏠"},
	{session.Assessment, "Assess", "📊"},
	{session.MoodTracker, "Mood", "😊"},
	{session.Journal, "Journal", "📝"},
	{session.Dashboard, "Stats", "📈"},
}

type Model struct {
	sess *session.Session
	log  *zap.Logger

	// layout
	width, height int
	theme         Theme
	keys          keyMap
	help          help.Model

	// widget state that never leaves the UI
	homeCursor int
	moodCursor int
	editor     textarea.Model

	status string
}

type Option func(*Model)

func WithTheme(t Theme) Option { return func(m *Model) { m.theme = t } }

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// NewModel renders sess. The session is shared, not copied.
func NewModel(sess *session.Session, opts ...Option) Model {
	ed := textarea.New()
	ed.Placeholder = "Write your thoughts here..."
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.SetHeight(8)
	ed.FocusedStyle.CursorLine = lipgloss.NewStyle()

	m := Model{
		sess:   sess,
		log:    zap.NewNop(),
		width:  defaultWidth,
		height: defaultHeight,
		theme:  DefaultTheme,
		keys:   defaultKeyMap(),
		help:   help.New(),
		editor: ed,
	}
	for _, o := range opts {
		o(&m)
	}
	m.resize()

	// the session may already be on a screen that needs widget state
	m.syncWidgets()
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(sess *session.Session, opts ...Option) error {
	m := NewModel(sess, opts...)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd {
	if m.sess.Current() == session.Journal {
		return textarea.Blink
	}
	return nil
}

// ---------- Update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// cursor blink and friends
	if m.sess.Current() == session.Journal {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.sess.Current()

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.log.Debug("quit", zap.Stringer("screen", cur))
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		return m.navigate(navTabs[(tabIndex(cur)+1)%len(navTabs)].target)
	case key.Matches(msg, m.keys.PrevTab):
		return m.navigate(navTabs[(tabIndex(cur)+len(navTabs)-1)%len(navTabs)].target)
	case cur != session.Home && key.Matches(msg, m.keys.Back):
		m.sess.Back()
		return m.afterNavigate()
	}

	// digits and q are text inside the journal editor
	if cur != session.Journal {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Debug("quit", zap.Stringer("screen", cur))
			return m, tea.Quit
		case key.Matches(msg, m.keys.JumpTab):
			i := int(msg.Runes[0] - '1')
			return m.navigate(navTabs[i].target)
		}
	}

	switch cur {
	case session.Home:
		return m.updateHome(msg)
	case session.Assessment:
		return m.updateAssessment(msg)
	case session.MoodTracker:
		return m.updateMood(msg)
	case session.Journal:
		return m.updateJournal(msg)
	case session.Dashboard:
		return m, nil
	}
	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.homeCursor = clamp(m.homeCursor-1, 0, len(homeCards)-1)
	case key.Matches(msg, m.keys.Down):
		m.homeCursor = clamp(m.homeCursor+1, 0, len(homeCards)-1)
	case key.Matches(msg, m.keys.Select):
		return m.navigate(homeCards[m.homeCursor].target)
	}
	return m, nil
}

func (m Model) updateAssessment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.status = "Coming Soon: Assessment functionality coming soon!"
	}
	return m, nil
}

func (m Model) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moods := session.Moods()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moodCursor = clamp(m.moodCursor-1, 0, len(moods)-1)
	case key.Matches(msg, m.keys.Right):
		m.moodCursor = clamp(m.moodCursor+1, 0, len(moods)-1)
	case key.Matches(msg, m.keys.Select):
		m.sess.SelectMood(moods[m.moodCursor])
	case key.Matches(msg, m.keys.Save):
		m.status = m.sess.SaveMood().String()
	}
	return m, nil
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Save) {
		m.status = m.sess.SaveJournalEntry().String()
		m.editor.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.sess.SetJournalText(m.editor.Value())
	return m, cmd
}

// ---------- navigation ----------

func (m Model) navigate(target session.Screen) (tea.Model, tea.Cmd) {
	m.sess.Navigate(target)
	return m.afterNavigate()
}

func (m Model) afterNavigate() (tea.Model, tea.Cmd) {
	m.status = ""
	cmd := m.syncWidgets()
	return m, cmd
}

// syncWidgets loads session state into the widgets of the current screen.
func (m *Model) syncWidgets() tea.Cmd {
	switch m.sess.Current() {
	case session.Journal:
		if m.editor.Value() != m.sess.JournalText() {
			m.editor.SetValue(m.sess.JournalText())
		}
		return m.editor.Focus()
	case session.MoodTracker:
		for i, mood := range session.Moods() {
			if mood == m.sess.SelectedMood() {
				m.moodCursor = i
			}
		}
	}
	m.editor.Blur()
	return nil
}

func (m *Model) resize() {
	w := max(minWidth, m.width)
	m.editor.SetWidth(w - 6)
	m.help.Width = w
}

func tabIndex(s session.Screen) int {
	for i, t := range navTabs {
		if t.target == s {
			return i
		}
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
