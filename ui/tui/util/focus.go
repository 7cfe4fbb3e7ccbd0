// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/util/slicest"
)

type Focusable interface {
	// Focus gives the model input focus. baseKeyMap holds the bindings of
	// the parents, to be announced together with the model's own.
	Focus(baseKeyMap help.KeyMap) tea.Cmd
	Blur()
}

type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

// AnnounceKeyMapCmd tells the footer which bindings are active.
func AnnounceKeyMapCmd(keyMaps ...help.KeyMap) tea.Cmd {
	keyMap := MergeKeyMaps(keyMaps...)
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: keyMap}
	}
}

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	bindings := slicest.Map(m.KeyMaps, func(k help.KeyMap) []key.Binding {
		if k != nil {
			return k.ShortHelp()
		}
		return nil
	})
	return slices.Concat(bindings...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	groups := slicest.Map(m.KeyMaps, func(k help.KeyMap) [][]key.Binding {
		if k != nil {
			return k.FullHelp()
		}
		return nil
	})
	return slices.Concat(groups...)
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
