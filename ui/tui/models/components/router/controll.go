// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/core/navigation"
)

// Controll lets the routed screens ask their router to navigate.
// A screen's Controll is bound to that screen: once the router has moved on,
// its requests are dropped. The Controll returned by New is not bound.
type Controll struct {
	rid    int
	screen int
}

func (c Controll) Navigate(req navigation.Request) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{rid: c.rid, screen: c.screen, Request: req} }
}

func (c Controll) Push(route navigation.Route) tea.Cmd {
	return c.Navigate(navigation.PushRequest(route))
}

func (c Controll) Back() tea.Cmd {
	return c.Navigate(navigation.BackRequest())
}
