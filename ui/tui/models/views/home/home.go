// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package home

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/core/flow"
	"github.com/toeirei/appcadastro/core/navigation"
	"github.com/toeirei/appcadastro/internal/i18n"
	"github.com/toeirei/appcadastro/internal/logging"
	"github.com/toeirei/appcadastro/ui/tui/models/components/menu"
	"github.com/toeirei/appcadastro/ui/tui/models/components/popup"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

type menuClosedMsg struct{}

type Model struct {
	state flow.HomeState
	size  util.Size
}

// New builds the home screen for route. defaultUserName is shown when the
// route does not carry a user name.
func New(route navigation.Route, defaultUserName string) *Model {
	return &Model{
		state: flow.NewHomeState(route, defaultUserName),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.OpenMenu) && !m.state.MenuOpen() {
			m.state.OpenMenu()
			return m.openMenu()
		}
	case menu.ItemSelected:
		item := flow.MenuItem(msg.Id)
		logging.Debugf("home: %s selected by %q", item, m.state.UserName())
		m.state.Select(item)
	case menuClosedMsg:
		m.state.CloseMenu()
	}
	return nil
}

func (m *Model) View() string {
	menuButton := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Padding(0, 1).
		Render(i18n.T("home.menu_button"))
	topBar := lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Right, menuButton)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		theme.Title.MarginBottom(1).Render(i18n.T("home.welcome", m.state.UserName())),
		theme.Subtle.Render(i18n.T("home.hint")),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		lipgloss.Place(m.size.Width, max(m.size.Height-1, 0), lipgloss.Center, lipgloss.Center, body),
	)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return util.AnnounceKeyMapCmd(baseKeyMap, DefaultKeyMap)
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) openMenu() tea.Cmd {
	items := make([]menu.Item, 0, len(flow.HomeMenu))
	for _, id := range flow.HomeMenu {
		item := menu.WithItem(string(id), m.menuLabel(id)).
			WithCmd(selectCmd(id))
		if id.DividerBefore() {
			item = item.WithDivider()
		}
		items = append(items, item)
	}

	_menu := menu.New(items...)
	_menu.OnClose = popup.Close()

	return popup.OpenWithCallback(util.ModelPointer(_menu), "", func(*util.Model) tea.Cmd {
		return func() tea.Msg { return menuClosedMsg{} }
	})
}

func (m *Model) menuLabel(id flow.MenuItem) string {
	if id == flow.MenuProfile {
		return i18n.T("menu."+string(id), m.state.UserName())
	}
	return i18n.T("menu." + string(id))
}

// selectCmd closes the popup first, so the selection reaches home
// instead of the menu.
func selectCmd(id flow.MenuItem) tea.Cmd {
	return tea.Sequence(
		popup.Close(),
		func() tea.Msg { return menu.ItemSelected{Id: string(id)} },
	)
}
