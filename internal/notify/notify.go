package notify

import (
	"github.com/gen2brain/beeep"
)

// Notifier delivers a titled message to the user.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends OS notifications.
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

// Func adapts a plain function to Notifier.
type Func func(title, body string) error

func (f Func) Notify(title, body string) error { return f(title, body) }

// New picks the notifier for the desktop setting.
func New(desktop bool) Notifier {
	if desktop {
		return Desktop{}
	}
	return Nop{}
}

func FormatCheckInPrompt() (string, string) {
	return "ReflectivEI check-in", "How are you feeling today? Pick a mood or jot down a reflection."
}
