// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

type openMsg struct {
	Model   *util.Model
	Title   string
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback opens m with a title line; cb runs once m is closed.
func OpenWithCallback(m *util.Model, title string, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, Title: title, OnClose: cb} }
}

// Close closes the topmost popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
