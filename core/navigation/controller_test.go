// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package navigation

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewSession_StartsAtLogin(t *testing.T) {
	c := NewSession()
	if got := c.Current().Screen; got != ScreenLogin {
		t.Fatalf("expected initial screen login, got %s", got)
	}
	if c.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", c.Depth())
	}
	if c.SessionID() == uuid.Nil {
		t.Fatalf("expected a random session id")
	}
}

func TestWithSessionID(t *testing.T) {
	id := uuid.MustParse("8b2def00-0000-4000-8000-000000000001")
	c := NewSession(WithSessionID(id))
	if c.SessionID() != id {
		t.Fatalf("expected session id %s, got %s", id, c.SessionID())
	}
}

func TestNavigateToAndGoBack(t *testing.T) {
	c := NewSession()
	c.NavigateTo(To(ScreenRegister))
	if c.Current().Screen != ScreenRegister || c.Depth() != 2 {
		t.Fatalf("expected register at depth 2, got %s at %d", c.Current(), c.Depth())
	}

	if !c.GoBack() {
		t.Fatalf("expected GoBack to pop")
	}
	if c.Current().Screen != ScreenLogin || c.Depth() != 1 {
		t.Fatalf("expected login at depth 1, got %s at %d", c.Current(), c.Depth())
	}
}

func TestGoBack_AtRootIsNoop(t *testing.T) {
	c := NewSession()
	if c.GoBack() {
		t.Fatalf("expected GoBack at root to report false")
	}
	if c.Current().Screen != ScreenLogin || c.Depth() != 1 {
		t.Fatalf("root must stay in place, got %s at %d", c.Current(), c.Depth())
	}
}

func TestGoBack_RestoresParams(t *testing.T) {
	c := NewSession()
	c.NavigateTo(ToWith(ScreenHome, WithUserName("alice")))
	c.NavigateTo(To(ScreenRegister))
	c.GoBack()

	name, ok := c.Current().Params.UserName()
	if !ok || name != "alice" {
		t.Fatalf("expected restored user name alice, got %q (set=%v)", name, ok)
	}
}

func TestApply_RegisterCyclesDoNotGrowHistory(t *testing.T) {
	c := NewSession()
	for range 50 {
		if !c.Apply(PushRequest(To(ScreenRegister))) {
			t.Fatalf("push must always change the route")
		}
		if !c.Apply(BackRequest()) {
			t.Fatalf("back from register must pop")
		}
	}
	if c.Depth() != 1 {
		t.Fatalf("expected depth 1 after register cycles, got %d", c.Depth())
	}
}

func TestObserver(t *testing.T) {
	type transition struct {
		from, to Screen
		kind     RequestKind
	}
	var seen []transition

	c := NewSession(WithObserver(func(from, to Route, kind RequestKind) {
		seen = append(seen, transition{from.Screen, to.Screen, kind})
	}))
	c.NavigateTo(To(ScreenRegister))
	c.GoBack()
	c.GoBack() // at root, no notification

	want := []transition{
		{ScreenLogin, ScreenRegister, Push},
		{ScreenRegister, ScreenLogin, Back},
	}
	if len(seen) != len(want) {
		t.Fatalf("expected %d transitions, got %d: %v", len(want), len(seen), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d: expected %v, got %v", i, want[i], seen[i])
		}
	}
}

func TestHistoryIsACopy(t *testing.T) {
	c := NewSession()
	h := c.History()
	h[0] = To(ScreenHome)
	if c.Current().Screen != ScreenLogin {
		t.Fatalf("mutating History() must not change the controller")
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		wantName string
		wantSet  bool
		wantOr   string
	}{
		{name: "zero", params: Params{}, wantName: "", wantSet: false, wantOr: "Usuário"},
		{name: "set", params: WithUserName("bob"), wantName: "bob", wantSet: true, wantOr: "bob"},
		{name: "setEmpty", params: WithUserName(""), wantName: "", wantSet: true, wantOr: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			name, ok := test.params.UserName()
			if name != test.wantName || ok != test.wantSet {
				t.Errorf("UserName() = (%q, %v), want (%q, %v)", name, ok, test.wantName, test.wantSet)
			}
			if got := test.params.UserNameOr("Usuário"); got != test.wantOr {
				t.Errorf("UserNameOr() = %q, want %q", got, test.wantOr)
			}
		})
	}
}

func TestRouteString(t *testing.T) {
	if got := To(ScreenLogin).String(); got != "login" {
		t.Errorf("expected %q, got %q", "login", got)
	}
	if got := ToWith(ScreenHome, WithUserName("alice")).String(); got != `home{userName="alice"}` {
		t.Errorf("unexpected route string %q", got)
	}
	if got := Screen(9).String(); got != "screen(9)" {
		t.Errorf("unexpected screen string %q", got)
	}
}
