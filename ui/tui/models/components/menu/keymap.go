package menu

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/appcadastro/internal/i18n"
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.Close}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Select, km.Close}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// ↑ ↓
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "shift+tab"),
		key.WithHelp("↑/k", i18n.T("keys.up")),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "tab"),
		key.WithHelp("↓/j", i18n.T("keys.down")),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "right"),
		key.WithHelp("enter", i18n.T("keys.select")),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "left", "backspace"),
		key.WithHelp("esc", i18n.T("keys.close_menu")),
	),
}
