// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/ui/tui/util"
	"github.com/toeirei/appcadastro/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches model.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msg_filters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msg_filters, msg, func(msg_filter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msg_filter(model, msg)
	})
}

// DropKeys keeps key presses away from an item, e.g. a display-only header.
func DropKeys(_ util.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	return msg
}
