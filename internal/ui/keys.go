package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ramanasai/reflectivei/internal/session"
)

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Save      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		JumpTab:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to home")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev mood")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next mood")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// screenHelp adapts the bindings relevant to one screen to help.KeyMap.
type screenHelp []key.Binding

func (h screenHelp) ShortHelp() []key.Binding  { return h }
func (h screenHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) forScreen(s session.Screen) screenHelp {
	switch s {
	case session.Home:
		return screenHelp{k.Up, k.Down, k.Select, k.NextTab, k.JumpTab, k.Quit}
	case session.Assessment:
		start := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start"))
		return screenHelp{start, k.Back, k.NextTab, k.Quit}
	case session.MoodTracker:
		return screenHelp{k.Left, k.Right, k.Select, k.Save, k.Back, k.Quit}
	case session.Journal:
		return screenHelp{k.Save, k.Back, k.NextTab, k.ForceQuit}
	case session.Dashboard:
		return screenHelp{k.Back, k.NextTab, k.JumpTab, k.Quit}
	}
	return screenHelp{k.Back, k.Quit}
}
