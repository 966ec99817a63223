// Package session holds the in-memory state behind the ReflectivEI screens:
// which screen is showing, the selected mood and the journal draft.
//
// A Session is owned by a single event loop. Nothing here is persisted.
package session

import (
	"fmt"

	"go.uber.org/zap"
)

type Screen int

const (
	Home Screen = iota
	Assessment
	MoodTracker
	Journal
	Dashboard
)

var screenNames = [...]string{
	Home:        "home",
	Assessment:  "assessment",
	MoodTracker: "mood",
	Journal:     "journal",
	Dashboard:   "dashboard",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

// Screens returns every screen in bottom navigation order.
func Screens() []Screen {
	return []Screen{Home, Assessment, MoodTracker, Journal, Dashboard}
}

// Mood is an opaque mood symbol. The zero value means no mood is selected.
type Mood string

const NoMood = "no mood"

var moods = []Mood{"😀", "🙂", "😐", "😢", "😠"}

// Moods returns the fixed set offered by the mood picker.
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// Notification is a fire-and-forget confirmation shown to the user.
type Notification struct {
	Title string
	Body  string
}

func (n Notification) String() string { return n.Title + ": " + n.Body }

// Notifier receives save confirmations. Delivery failures are logged only.
type Notifier interface {
	Notify(title, body string) error
}

type Option func(*Session)

func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

type Session struct {
	current     Screen
	mood        Mood
	journalText string

	notifier Notifier
	log      *zap.Logger
}

// New returns a session on the home screen with no mood and an empty draft.
func New(opts ...Option) *Session {
	s := &Session{current: Home, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) Current() Screen     { return s.current }
func (s *Session) SelectedMood() Mood  { return s.mood }
func (s *Session) JournalText() string { return s.journalText }

// Navigate makes target the current screen. Every transition is allowed.
func (s *Session) Navigate(target Screen) {
	if target != s.current {
		s.log.Debug("navigate", zap.Stringer("from", s.current), zap.Stringer("to", target))
	}
	s.current = target
}

// Back returns to the home screen. There is no history stack.
func (s *Session) Back() { s.Navigate(Home) }

func (s *Session) SelectMood(m Mood) {
	s.mood = m
	s.log.Debug("mood selected", zap.String("mood", string(m)))
}

// SaveMood confirms the current selection. The selection is left untouched.
func (s *Session) SaveMood() Notification {
	label := string(s.mood)
	if label == "" {
		label = NoMood
	}
	n := Notification{
		Title: "Mood Saved",
		Body:  fmt.Sprintf("You selected %s today.", label),
	}
	s.emit(n)
	return n
}

func (s *Session) SetJournalText(text string) { s.journalText = text }

// SaveJournalEntry confirms the entry and clears the draft.
func (s *Session) SaveJournalEntry() Notification {
	n := Notification{
		Title: "Journal Entry Saved",
		Body:  "Your reflection has been recorded.",
	}
	s.emit(n)
	s.log.Debug("journal entry saved", zap.Int("length", len(s.journalText)))
	s.journalText = ""
	return n
}

func (s *Session) emit(n Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(n.Title, n.Body); err != nil {
		s.log.Warn("notification failed", zap.String("title", n.Title), zap.Error(err))
	}
}
