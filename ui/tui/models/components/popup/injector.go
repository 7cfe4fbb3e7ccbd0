// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup draws models on top of another one. While a popup is open it
// receives every message except window sizes, which go to all layers.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

const (
	reservedHeight int = 4
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	title   string
	onClose func(*util.Model) tea.Cmd
}

type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size

	focused    bool
	baseKeyMap help.KeyMap
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			title:   msg.Title,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	}

	return (*m.activeModel()).Update(msg)
}

func (m *Injector) View() string {
	childView := (*m.child).View()

	if len(m.popups) > 0 {
		active := m.popups[len(m.popups)-1]
		content := (*active.model).View()
		if active.title != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render(active.title), content)
		}
		popupView := lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Render(content)

		childView = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		return overlay(childView, popupView)
	}
	return childView
}

func (m *Injector) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	m.focused, m.baseKeyMap = true, baseKeyMap
	return (*m.activeModel()).Focus(baseKeyMap)
}
func (m *Injector) Blur() {
	m.focused = false
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

// Len returns the number of open popups.
func (m *Injector) Len() int {
	return len(m.popups)
}

func (m *Injector) open(popup popup) tea.Cmd {
	// blur active view
	(*m.activeModel()).Blur()
	// append new popup
	m.popups = append(m.popups, popup)
	// init and focus new popup
	return tea.Batch(
		(*popup.model).Init(),
		(*popup.model).Update(m.popupSize()),
		m.focusActiveModel(),
	)
}

func (m *Injector) close() tea.Cmd {
	// popup left to close?
	if len(m.popups) == 0 {
		return nil
	}
	// blur and pop old popup
	(*m.activeModel()).Blur()
	popup := m.popups[len(m.popups)-1]
	m.popups = m.popups[:len(m.popups)-1]

	var onCloseCmd tea.Cmd
	if popup.onClose != nil {
		onCloseCmd = popup.onClose(popup.model)
	}
	// focus underlying view
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	if !m.focused {
		return nil
	}
	return (*m.activeModel()).Focus(m.baseKeyMap)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

// overlay centers top on base. base keeps its size, top is clipped to it.
func overlay(base, top string) string {
	baseWidth, baseHeight := lipgloss.Size(base)
	// limit top dimensions to base
	top = lipgloss.NewStyle().MaxWidth(baseWidth).MaxHeight(baseHeight).Render(top)
	topWidth, topHeight := lipgloss.Size(top)

	offsetLeft := (baseWidth - topWidth) / 2
	offsetTop := (baseHeight - topHeight) / 2

	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	for i, line := range topLines {
		row := i + offsetTop
		left := ansi.Truncate(baseLines[row], offsetLeft, "")
		// pad short lines so the popup stays in its column
		left += strings.Repeat(" ", offsetLeft-ansi.StringWidth(left))
		right := ansi.TruncateLeft(baseLines[row], offsetLeft+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}

	return strings.Join(baseLines, "\n")
}
