// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/appcadastro/ui/tui/util"
	"github.com/toeirei/appcadastro/util/slicest"
)

type FormInput interface {
	util.Focusable
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

// Form is a focusable list of inputs whose values decode into T.
// Items with an empty id (buttons) take part in focus but not in T.
type Form[T any] struct {
	OnSubmit func(result T, err error) tea.Cmd
	OnCancel func() tea.Cmd
	Gap      int

	items       []formItem
	activeIndex int
	focused     bool
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	// handle key updates for form
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		case key.Matches(kmsg, DefaultKeyMap.Cancel):
			return f, f.cancel()
		}
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	gap := lipgloss.NewStyle().MarginTop(f.Gap)
	return lipgloss.JoinVertical(
		lipgloss.Center,
		slicest.MapI(f.items, func(i int, item formItem) string {
			view := item.input.View(f.size.Width)
			if i == 0 {
				return view
			}
			return gap.Render(view)
		})...,
	)
}

func (f *Form[T]) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	f.focused, f.baseKeyMap = true, baseKeyMap
	if len(f.items) == 0 {
		return util.AnnounceKeyMapCmd(baseKeyMap)
	}
	return f.items[f.activeIndex].input.Focus(f.keyMap())
}

func (f *Form[T]) Blur() {
	f.focused, f.baseKeyMap = false, nil
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

func (f *Form[T]) Focused() bool {
	return f.focused
}

// ActiveIndex returns the position of the focused item.
func (f *Form[T]) ActiveIndex() int {
	return f.activeIndex
}

func (f *Form[T]) Submit() tea.Cmd {
	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit(f.Get())
}

func (f *Form[T]) cancel() tea.Cmd {
	if f.OnCancel == nil {
		return nil
	}
	return f.OnCancel()
}

func (f *Form[T]) keyMap() help.KeyMap {
	keyMap := DefaultKeyMap
	keyMap.Cancel.SetEnabled(f.OnCancel != nil)
	return util.MergeKeyMaps(f.baseKeyMap, keyMap)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		actionCmd = f.cancel()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// changeActiveIndex moves focus by delta items, wrapping around.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	if delta != 0 {
		oldActiveIndex := f.activeIndex
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
		f.items[oldActiveIndex].input.Blur()
	}

	if !f.focused {
		return nil
	}
	return f.items[f.activeIndex].input.Focus(f.keyMap())
}

// Get decodes the current input values into T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id == "" {
			continue
		}
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}
