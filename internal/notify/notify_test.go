package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPicksNotifier(t *testing.T) {
	assert.IsType(t, Desktop{}, New(true))
	assert.IsType(t, Nop{}, New(false))
}

func TestFuncAdapter(t *testing.T) {
	var gotTitle, gotBody string
	n := Func(func(title, body string) error {
		gotTitle, gotBody = title, body
		return nil
	})
	assert.NoError(t, n.Notify("Mood Saved", "You selected 😀 today."))
	assert.Equal(t, "Mood Saved", gotTitle)
	assert.Equal(t, "You selected 😀 today.", gotBody)
}

func TestCheckInPrompt(t *testing.T) {
	title, msg := FormatCheckInPrompt()
	assert.NotEmpty(t, title)
	assert.Contains(t, msg, "feeling")
}
