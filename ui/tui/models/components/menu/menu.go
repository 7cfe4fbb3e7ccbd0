// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

type Model struct {
	Items  []Item
	Active int
	// OnClose is returned when the close key is pressed.
	OnClose tea.Cmd

	size    util.Size
	focused bool
}

func New(items ...Item) *Model {
	return &Model{
		Items: items,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	if m.focused && len(m.Items) > 0 {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, DefaultKeyMap.Up):
				m.up()
			case key.Matches(msg, DefaultKeyMap.Down):
				m.down()
			case key.Matches(msg, DefaultKeyMap.Select):
				return m.selectActive()
			case key.Matches(msg, DefaultKeyMap.Close):
				return m.OnClose
			}
		}
	}
	return nil
}

func (m *Model) view() string {
	// Render Menu
	view := renderItems(m.Items, m.Active)

	// Clip view around the active item if too big for viewport
	height := lipgloss.Height(view)
	if m.size.Height > 0 && height > m.size.Height {
		lines := strings.Split(view, "\n")
		i := util.Clamp(0, m.activeLine()-m.size.Height/2, height-m.size.Height)
		view = strings.Join(lines[i:i+m.size.Height], "\n")
	}
	return view
}

func (m *Model) View() string {
	style := lipgloss.NewStyle()
	if m.size.Width > 0 {
		style = style.MaxWidth(m.size.Width)
	}
	if m.size.Height > 0 {
		style = style.MaxHeight(m.size.Height)
	}
	return style.Render(m.view())
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	m.focused = true
	return util.AnnounceKeyMapCmd(baseKeyMap, DefaultKeyMap)
}
func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) up() {
	m.Active = max(m.Active-1, 0)
}

func (m *Model) down() {
	m.Active = min(m.Active+1, len(m.Items)-1)
}

func (m *Model) selectActive() tea.Cmd {
	item := m.Items[m.Active]
	if item.Cmd != nil {
		return item.Cmd
	}
	return func() tea.Msg { return ItemSelected{Id: item.Id} }
}

// activeLine is the rendered line of the active item, dividers included.
func (m *Model) activeLine() int {
	line := 0
	for i, item := range m.Items[:m.Active+1] {
		if item.Divider && i > 0 {
			line++
		}
		if i < m.Active {
			line++
		}
	}
	return line
}
