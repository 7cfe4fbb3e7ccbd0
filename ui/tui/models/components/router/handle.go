// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/internal/logging"
)

// handle NavigateMsg
func (r *Router) handleNavigate(msg NavigateMsg) tea.Cmd {
	from := r.nav.Current()
	if msg.screen != 0 && msg.screen != r.screen {
		// sent by a screen that was already replaced, e.g. a repeated enter
		logging.Debugf("router %d: dropped stale %s from screen %d at %s", r.id, msg.Request.Kind, msg.screen, from)
		return nil
	}
	if !r.nav.Apply(msg.Request) {
		logging.Debugf("router %d: ignored %s at %s", r.id, msg.Request.Kind, from)
		return nil
	}
	to := r.nav.Current()

	// destroy recent model, screens start over on every visit
	(*r.active).Blur()
	r.active = r.build(to)

	return tea.Batch(
		r.activeModelInit(),
		func() tea.Msg {
			return RouteChangedMsg{From: from, To: to, Kind: msg.Request.Kind}
		},
	)
}
