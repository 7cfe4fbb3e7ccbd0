// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is a component of the TUI. Unlike tea.Model it updates in place and
// takes part in focus handling.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// polyfill: won't be needed as of go 1.26
func new[T any](v T) *T { return &v }

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	return new(Model(v))
}

func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}

func BorrowModelFuncSafe[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) error {
	if t, ok := (*m).(PT); ok {
		fn(t)
		*m = Model(t)
		return nil
	}
	var want PT
	return fmt.Errorf("type mismatch inferring model: %T != %T", *m, want)
}
