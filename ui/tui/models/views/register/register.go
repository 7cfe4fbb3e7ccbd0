// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package register

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

const formWidth = 44

type Model struct {
	rc   router.Controll
	form form.Form[flow.RegisterData]
	size util.Size
}

func New(rc router.Controll) *Model {
	m := &Model{rc: rc}
	m.form = form.New(
		form.WithInput[flow.RegisterData]("user_name", forminput.NewText(i18n.T("register.user_name"), "")),
		form.WithInput[flow.RegisterData]("email", forminput.NewText(i18n.T("register.email"), "")),
		form.WithInput[flow.RegisterData]("password", forminput.NewPassword(i18n.T("register.password"), "")),
		form.WithInput[flow.RegisterData]("confirm_password", forminput.NewPassword(i18n.T("register.confirm_password"), "")),
		form.WithInput[flow.RegisterData]("", forminput.NewButton(i18n.T("register.submit"), false)),
		form.WithInput[flow.RegisterData]("", forminput.NewLink(i18n.T("register.login_link"), m.goToLogin)),
		form.WithOnSubmit(m.submit),
		form.WithOnCancel[flow.RegisterData](m.goToLogin),
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
		theme.Title.MarginBottom(1).Render(i18n.T("register.title")),
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

func (m *Model) submit(data flow.RegisterData, err error) tea.Cmd {
	if err != nil {
		logging.Errorf("register: reading form: %v", err)
	}
	logging.Debugf("register: submit for %q", data.UserName)
	return m.rc.Navigate(flow.SubmitRegister(data))
}

func (m *Model) goToLogin() tea.Cmd {
	return m.rc.Navigate(flow.GoToLogin())
}
