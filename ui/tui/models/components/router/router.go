// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package router shows the screen of the current route of a
// navigation.Controller and swaps it when the route changes.
package router

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/core/navigation"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

var routerId = 1

// Factory builds the screen for route. ctl navigates the router that owns it.
type Factory func(route navigation.Route, ctl Controll) *util.Model

type Router struct {
	id      int
	size    util.Size
	nav     *navigation.Controller
	factory Factory
	active  *util.Model
	// screen counts the screens built so far; it identifies the active one
	screen int

	focused    bool
	baseKeyMap help.KeyMap
}

func New(nav *navigation.Controller, factory Factory) (*Router, Controll) {
	routerId++
	r := &Router{
		id:      routerId - 1,
		nav:     nav,
		factory: factory,
	}
	r.active = r.build(nav.Current())
	return r, Controll{rid: r.id}
}

func (r *Router) Init() tea.Cmd {
	return tea.Sequence(
		(*r.active).Init(),
		r.activeModelUpdate(r.size.ToMsg()),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if r.size.Update(msg) {
		// pass window size messages
		cmd = r.activeModelUpdate(msg)
	} else if r.isMsgOwner(msg) {
		// handle controll messages meant for this router
		switch msg := msg.(type) {
		case NavigateMsg:
			cmd = r.handleNavigate(msg)
		}
	} else {
		// pass other messages, including controll messages of child routers
		cmd = r.activeModelUpdate(msg)
	}

	return cmd
}

func (r *Router) View() string {
	return (*r.active).View()
}

func (r *Router) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	r.focused, r.baseKeyMap = true, baseKeyMap
	return (*r.active).Focus(baseKeyMap)
}

func (r *Router) Blur() {
	r.focused, r.baseKeyMap = false, nil
	(*r.active).Blur()
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

// Current returns the route whose screen is shown.
func (r *Router) Current() navigation.Route {
	return r.nav.Current()
}

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerID() == r.id
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(RouterMsg)
	return ok
}
