// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/appcadastro/core/navigation"
	"github.com/toeirei/appcadastro/ui/tui/testutil"
)

type app struct {
	root    *Model
	session *navigation.Controller
	d       *testutil.Driver
}

func start(t *testing.T) *app {
	t.Helper()
	return startWith(t, Options{})
}

func startWith(t *testing.T, opts Options) *app {
	t.Helper()
	session := navigation.NewSession()
	opts.Session = session
	root := New(opts)
	var model tea.Model = root

	d := testutil.NewTea(t, &model)
	d.Run(root.Init())
	d.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return &app{root: root, session: session, d: d}
}

func (a *app) view() string {
	return ansi.Strip(a.root.View())
}

func TestApp_StartsAtLogin(t *testing.T) {
	a := start(t)
	if a.root.Current().Screen != navigation.ScreenLogin {
		t.Fatalf("expected login, got %s", a.root.Current())
	}
	view := a.view()
	for _, want := range []string{"App Cadastro", "App login", "ctrl+c"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestApp_LoginReachesHome(t *testing.T) {
	tests := []struct {
		name string
		user string
		want string
	}{
		{name: "named", user: "alice", want: "Bem-vindo, alice!"},
		{name: "guest", user: "", want: "Bem-vindo, convidado!"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := start(t)
			a.d.Type(test.user)
			a.d.Press(tea.KeyEnter, tea.KeyEnter, tea.KeyEnter)

			if a.root.Current().Screen != navigation.ScreenHome {
				t.Fatalf("expected home, got %s", a.root.Current())
			}
			if view := a.view(); !strings.Contains(view, test.want) {
				t.Fatalf("expected %q in view:\n%s", test.want, view)
			}
			if a.session.Depth() != 2 {
				t.Fatalf("expected depth 2, got %d", a.session.Depth())
			}
		})
	}
}

func TestApp_BlankGuestNameFallsBack(t *testing.T) {
	for _, guest := range []string{"", "   ", "\t"} {
		a := startWith(t, Options{GuestName: guest, DefaultUserName: " "})
		a.d.Press(tea.KeyEnter, tea.KeyEnter, tea.KeyEnter)

		if view := a.view(); !strings.Contains(view, "Bem-vindo, convidado!") {
			t.Fatalf("guest name %q: expected default guest in view:\n%s", guest, view)
		}
	}
}

func TestApp_RegisterRoundTripClearsLogin(t *testing.T) {
	a := start(t)
	a.d.Type("bob")
	// "Esqueceu a senha?" link
	a.d.Press(tea.KeyShiftTab, tea.KeyEnter)

	if a.root.Current().Screen != navigation.ScreenRegister {
		t.Fatalf("expected register, got %s", a.root.Current())
	}
	if view := a.view(); !strings.Contains(view, "Confirmar senha") {
		t.Fatalf("expected register form:\n%s", view)
	}

	a.d.Type("carol")
	// submit with mismatching passwords
	a.d.Press(tea.KeyEnter, tea.KeyEnter)
	a.d.Type("a")
	a.d.Press(tea.KeyEnter)
	a.d.Type("b")
	a.d.Press(tea.KeyEnter, tea.KeyEnter)

	if a.root.Current().Screen != navigation.ScreenLogin || a.session.Depth() != 1 {
		t.Fatalf("expected login at depth 1, got %s at %d", a.root.Current(), a.session.Depth())
	}
	view := a.view()
	if strings.Contains(view, "bob") || strings.Contains(view, "carol") {
		t.Fatalf("expected empty login form after returning:\n%s", view)
	}
}

func TestApp_RegisterEscAndCycles(t *testing.T) {
	a := start(t)
	for range 10 {
		a.d.Press(tea.KeyShiftTab, tea.KeyEnter)
		if a.root.Current().Screen != navigation.ScreenRegister {
			t.Fatalf("expected register, got %s", a.root.Current())
		}
		a.d.Press(tea.KeyEsc)
	}
	if a.root.Current().Screen != navigation.ScreenLogin || a.session.Depth() != 1 {
		t.Fatalf("expected login at depth 1, got %s at %d", a.root.Current(), a.session.Depth())
	}
}

func TestApp_RepeatedEnterOnRegisterLink(t *testing.T) {
	a := start(t)
	a.d.Press(tea.KeyShiftTab)

	// two enters queued before the first navigation is handled
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	_, first := a.root.Update(enter)
	_, second := a.root.Update(enter)
	a.d.Run(first)
	a.d.Run(second)

	if a.root.Current().Screen != navigation.ScreenRegister || a.session.Depth() != 2 {
		t.Fatalf("expected register at depth 2, got %s: %v", a.root.Current(), a.session.History())
	}

	a.d.Press(tea.KeyEsc)
	if a.root.Current().Screen != navigation.ScreenLogin || a.session.Depth() != 1 {
		t.Fatalf("expected login at depth 1, got %s at %d", a.root.Current(), a.session.Depth())
	}
}

func TestApp_RepeatedLoginSubmit(t *testing.T) {
	a := start(t)
	a.d.Type("alice")
	a.d.Press(tea.KeyEnter, tea.KeyEnter)

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	_, first := a.root.Update(enter)
	_, second := a.root.Update(enter)
	a.d.Run(first)
	a.d.Run(second)

	if a.root.Current().Screen != navigation.ScreenHome || a.session.Depth() != 2 {
		t.Fatalf("expected home at depth 2, got %v", a.session.History())
	}
}

func TestApp_HomeMenu(t *testing.T) {
	a := start(t)
	a.d.Type("alice")
	a.d.Press(tea.KeyEnter, tea.KeyEnter, tea.KeyEnter)

	a.d.Type("m")
	if view := a.view(); !strings.Contains(view, "Perfil de alice") {
		t.Fatalf("expected open menu:\n%s", view)
	}

	// select "Deslogar", which does not log out
	a.d.Press(tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyEnter)

	view := a.view()
	if strings.Contains(view, "Perfil de alice") {
		t.Fatalf("expected closed menu:\n%s", view)
	}
	if a.root.Current().Screen != navigation.ScreenHome || !strings.Contains(view, "Bem-vindo, alice!") {
		t.Fatalf("expected to stay on home as alice:\n%s", view)
	}

	// home is terminal
	a.d.Press(tea.KeyEsc)
	if a.root.Current().Screen != navigation.ScreenHome {
		t.Fatalf("esc must not leave home")
	}
}

func TestApp_HeaderFollowsScreen(t *testing.T) {
	a := start(t)
	a.d.Press(tea.KeyShiftTab, tea.KeyEnter)
	if view := a.view(); !strings.Contains(view, "App Cadastro · Cadastro") {
		t.Fatalf("expected register title in header:\n%s", view)
	}
}

func TestApp_HelpAndExit(t *testing.T) {
	a := start(t)
	a.d.Press(tea.KeyF1)
	if !a.root.footer.Expanded() {
		t.Fatalf("expected expanded help")
	}
	a.d.Press(tea.KeyF1)
	if a.root.footer.Expanded() {
		t.Fatalf("expected collapsed help")
	}

	a.d.Press(tea.KeyCtrlC)
	if !a.d.Quit {
		t.Fatalf("expected ctrl+c to quit")
	}
}
