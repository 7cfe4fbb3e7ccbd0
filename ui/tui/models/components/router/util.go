// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/core/navigation"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

// build creates the screen for route with a Controll bound to it.
func (r *Router) build(route navigation.Route) *util.Model {
	r.screen++
	return r.factory(route, Controll{rid: r.id, screen: r.screen})
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.active).Update(msg)
}

func (r *Router) activeModelFocus() tea.Cmd {
	if !r.focused {
		return nil
	}
	return (*r.active).Focus(r.baseKeyMap)
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Sequence(
		(*r.active).Init(),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
	)
}
