// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/ui/tui/models/components/keyhelp"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

// Model shows the key help of the focused screen followed by baseKeyMap.
type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	m := &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
	m.help.KeyMap = baseKeyMap
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// catch AnnounceKeyMapMsg and inject baseKeyMap
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m *Model) view() string {
	return m.help.View()
}

func (m *Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.Secondary).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			h_pos,
			m.view(),
		))
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return m.help.Focus(baseKeyMap)
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Expanded reports whether the full help is shown.
func (m *Model) Expanded() bool {
	return m.help.Expanded
}
