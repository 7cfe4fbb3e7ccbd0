// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package home

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/appcadastro/internal/i18n"
)

type KeyMap struct {
	OpenMenu key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.OpenMenu}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.OpenMenu}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	OpenMenu: key.NewBinding(
		key.WithKeys("m", "enter"),
		key.WithHelp("m", i18n.T("keys.open_menu")),
	),
}
