// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/util/slicest"
)

func WithItem(id string, name string) Item {
	return Item{
		Id:   id,
		Name: name,
	}
}

type Item struct {
	Id   string
	Name string
	// Divider draws a separator line above the item.
	Divider bool
	// Cmd replaces the ItemSelected message when set.
	Cmd tea.Cmd
}

func (i Item) WithDivider() Item {
	i.Divider = true
	return i
}

func (i Item) WithCmd(cmd tea.Cmd) Item {
	i.Cmd = cmd
	return i
}

func (i Item) View(is_active bool) string {
	item_style := lipgloss.NewStyle().Padding(0, 1)
	if is_active {
		item_style = item_style.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(theme.Primary).
			Bold(true)
	}
	return item_style.Render(i.Name)
}

type ItemSelected struct {
	Id string
}

func renderItems(items []Item, active_i int) string {
	width := slicest.Reduce(items, func(item Item, w int) int {
		return max(w, lipgloss.Width(item.Name)+2)
	})
	divider := lipgloss.NewStyle().
		Foreground(theme.Muted).
		Render(strings.Repeat("─", width))

	lines := make([]string, 0, len(items)+1)
	for i, item := range items {
		if item.Divider && i > 0 {
			lines = append(lines, divider)
		}
		lines = append(lines, item.View(active_i == i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
