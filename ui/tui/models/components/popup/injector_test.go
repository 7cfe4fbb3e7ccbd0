// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/appcadastro/ui/tui/testutil"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

type layer struct {
	text    string
	focused bool
	size    util.Size
	keys    int
}

func (l *layer) Init() tea.Cmd { return nil }
func (l *layer) Update(msg tea.Msg) tea.Cmd {
	l.size.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		l.keys++
	}
	return nil
}
func (l *layer) View() string {
	w := max(l.size.Width, 1)
	lines := make([]string, max(l.size.Height, 1))
	for i := range lines {
		lines[i] = strings.Repeat(l.text, w)[:w]
	}
	return strings.Join(lines, "\n")
}
func (l *layer) Focus(help.KeyMap) tea.Cmd { l.focused = true; return nil }
func (l *layer) Blur()                     { l.focused = false }

type closedMsg struct{}

func TestInjector_OpenRoutesAndClose(t *testing.T) {
	base := &layer{text: "."}
	top := &layer{text: "#"}
	inj := NewInjector(util.ModelPointer(base))
	d := testutil.New(t, inj)

	d.Send(tea.WindowSizeMsg{Width: 20, Height: 10})
	d.Run(inj.Focus(nil))

	d.Run(OpenWithCallback(util.ModelPointer(top), "", func(*util.Model) tea.Cmd {
		return func() tea.Msg { return closedMsg{} }
	}))

	if inj.Len() != 1 || base.focused || !top.focused {
		t.Fatalf("expected focused popup over blurred base")
	}
	if top.size.Width != 14 || top.size.Height != 6 {
		t.Fatalf("unexpected popup size %+v", top.size)
	}

	d.Press(tea.KeyEnter)
	if top.keys != 1 || base.keys != 0 {
		t.Fatalf("keys must reach the popup only, got top=%d base=%d", top.keys, base.keys)
	}

	view := ansi.Strip(inj.View())
	if lines := strings.Split(view, "\n"); len(lines) != 10 {
		t.Fatalf("overlay must keep the base height, got %d lines", len(lines))
	}
	if !strings.Contains(view, "#") || !strings.Contains(view, ".") {
		t.Fatalf("expected both layers in overlay:\n%s", view)
	}

	d.Run(Close())
	if inj.Len() != 0 || !base.focused || top.focused {
		t.Fatalf("expected base focused after close")
	}
	if _, ok := testutil.Find[closedMsg](d); !ok {
		t.Fatalf("expected close callback to run")
	}

	// closing without popups is a no-op
	d.Run(Close())
	if !base.focused {
		t.Fatalf("base must stay focused")
	}
}

func TestOverlay_Centers(t *testing.T) {
	base := strings.Join([]string{".....", ".....", "....."}, "\n")
	got := overlay(base, "#")
	want := strings.Join([]string{".....", "..#..", "....."}, "\n")
	if got != want {
		t.Fatalf("unexpected overlay:\n%s", got)
	}
}
