// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package login

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/core/flow"
	"github.com/toeirei/appcadastro/internal/i18n"
	"github.com/toeirei/appcadastro/internal/logging"
	"github.com/toeirei/appcadastro/ui/tui/models/components/router"
	"github.com/toeirei/appcadastro/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/appcadastro/ui/tui/models/helpers/form/input"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

const formWidth = 40

type Model struct {
	rc        router.Controll
	guestName string
	form      form.Form[flow.LoginData]
	size      util.Size
}

// New builds the login screen. A blank user name logs in as guestName.
func New(rc router.Controll, guestName string) *Model {
	m := &Model{
		rc:        rc,
		guestName: guestName,
	}
	m.form = form.New(
		form.WithGap[flow.LoginData](1),
		form.WithInput[flow.LoginData]("user", forminput.NewText(i18n.T("login.user"), "")),
		form.WithInput[flow.LoginData]("password", forminput.NewPassword(i18n.T("login.password"), "")),
		form.WithInput[flow.LoginData]("", forminput.NewButton(i18n.T("login.submit"), false)),
		form.WithInput[flow.LoginData]("", forminput.NewLink(i18n.T("login.register_link"), m.requestRegister)),
		form.WithOnSubmit(m.submit),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(tea.WindowSizeMsg{
			Width:  min(formWidth, m.size.Width),
			Height: m.size.Height,
		})
		return cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) View() string {
	card := theme.Card.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		theme.Title.MarginBottom(1).Render(i18n.T("login.title")),
		m.form.View(),
	))
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return m.form.Focus(baseKeyMap)
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) submit(data flow.LoginData, err error) tea.Cmd {
	if err != nil {
		// continue as guest
		logging.Errorf("login: reading form: %v", err)
		data = flow.LoginData{}
	}
	req := flow.SubmitLogin(data, m.guestName)
	logging.Debugf("login: submit, continuing as %s", req.Route)
	return m.rc.Navigate(req)
}

func (m *Model) requestRegister() tea.Cmd {
	return m.rc.Navigate(flow.RequestRegister())
}
