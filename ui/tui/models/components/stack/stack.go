// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out models side by side or on top of each other and
// splits the available space between them.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/ui/tui/util"
	"github.com/toeirei/appcadastro/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
	baseKeyMap    help.KeyMap
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	old_size   int
}

func (s *Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			// apply message filters
			msg := applyMessageFilters(*item.Model, msg, item.MsgFilters)
			msg = applyMessageFilters(*item.Model, msg, s.MsgFilters)
			if msg == nil {
				return nil
			}

			// update model
			return (*item.Model).Update(msg)
		})...)

		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s *Model) View() string {
	// prepare based on orientation
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	// join rendered items, skipping the ones without space
	views := make([]string, 0, len(s.items))
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		// no gap on first item
		margin := s.Gap * min(i, 1)
		views = append(views, styler(item.size, margin).Render((*item.Model).View()))
	}
	return joiner(s.Align, views...)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	m.baseKeyMap = baseKeyMap
	if m.focussedIndex == FocusAll() {
		return tea.Batch(slicest.Map(m.items, func(item Item) tea.Cmd {
			return (*item.Model).Focus(baseKeyMap)
		})...)
	}
	return (*m.items[m.focussedIndex].Model).Focus(baseKeyMap)
}

func (m *Model) Blur() {
	if m.focussedIndex == FocusAll() {
		for _, item := range m.items {
			(*item.Model).Blur()
		}
	} else {
		(*m.items[m.focussedIndex].Model).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (m *Model) SetFocus(focus Focus) tea.Cmd {
	m.Blur()
	m.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(m.items)-1))
	return m.Focus(m.baseKeyMap)
}
