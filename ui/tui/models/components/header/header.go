// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/ui/tui/models/components/router"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

// Model shows the app title and the title of the current screen.
type Model struct {
	Title    string
	Subtitle string
	size     util.Size
	titleOf  func(router.RouteChangedMsg) string
}

// New creates a header. titleOf names the screen after every route change.
func New(title, subtitle string, titleOf func(router.RouteChangedMsg) string) *Model {
	return &Model{
		Title:    title,
		Subtitle: subtitle,
		titleOf:  titleOf,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(router.RouteChangedMsg); ok && m.titleOf != nil {
		m.Subtitle = m.titleOf(msg)
	}
	return nil
}

func (m *Model) View() string {
	content := theme.Title.Render(m.Title)
	if m.Subtitle != "" {
		content += theme.Subtle.Render(" · " + m.Subtitle)
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(theme.Secondary).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			content,
		))
}

func (m *Model) Focus(help.KeyMap) tea.Cmd {
	return nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
