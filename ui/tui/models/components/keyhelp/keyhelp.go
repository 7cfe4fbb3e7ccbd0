// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

// Model renders the bindings last announced through util.AnnounceKeyMapMsg.
type Model struct {
	KeyMap   help.KeyMap
	Expanded bool
	size     util.Size
	help     help.Model
}

func New() *Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	h.Styles.ShortKey = keyStyle
	h.Styles.FullKey = keyStyle
	return &Model{
		help: h,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}

	return nil
}

func (m *Model) View() string {
	if m.KeyMap != nil {
		if !m.Expanded {
			return ShortHelpView(m.help, m.KeyMap.ShortHelp())
		} else {
			return FullHelpView(m.help, m.KeyMap.FullHelp())
		}
	}
	return ""
}

func (m *Model) Focus(help.KeyMap) tea.Cmd {
	return nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
