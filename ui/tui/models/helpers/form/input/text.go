// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/appcadastro/internal/i18n"
	"github.com/toeirei/appcadastro/ui/tui/models/helpers/form"
	"github.com/toeirei/appcadastro/ui/tui/theme"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

// CursorMode is applied to every text input created after it is set.
// Blinking is enabled by the tui package from the ui.cursor-blink setting.
var CursorMode = cursor.CursorStatic

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) form.FormInput {
	return newText(label, placeholder)
}

// NewPassword is a text input that masks what is typed.
func NewPassword(label, placeholder string) form.FormInput {
	t := newText(label, placeholder)
	t.input.EchoMode = textinput.EchoPassword
	t.input.EchoCharacter = '•'
	return t
}

func newText(label, placeholder string) *Text {
	input := textinput.New()
	input.Prompt = "› "
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	input.Cursor.SetMode(CursorMode)

	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("keys.next")),
			),
		},
		input: input,
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(
		t.input.Focus(),
		util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap),
	)
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.Muted).
		Width(width)

	focusedStyle := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	label := t.Label
	if t.focused {
		label = focusedStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}

	t.input.Width = max(width-4, 1)
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

var _ form.FormInput = (*Text)(nil)
