// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/appcadastro/ui/tui/models/helpers/form/input"
)

type credentials struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type recorder struct {
	submitted []credentials
	cancelled int
	clicked   int
}

func newCredentialsForm(r *recorder, opts ...form.NewOpt[credentials]) form.Form[credentials] {
	opts = append([]form.NewOpt[credentials]{
		form.WithInput[credentials]("user", forminput.NewText("User", "")),
		form.WithInput[credentials]("password", forminput.NewPassword("Password", "")),
		form.WithInput[credentials]("", forminput.NewButton("Submit", false)),
		form.WithInput[credentials]("", forminput.NewLink("Link", func() tea.Cmd {
			r.clicked++
			return nil
		})),
		form.WithOnSubmit(func(result credentials, err error) tea.Cmd {
			if err == nil {
				r.submitted = append(r.submitted, result)
			}
			return nil
		}),
		form.WithOnCancel[credentials](func() tea.Cmd {
			r.cancelled++
			return nil
		}),
	}, opts...)
	return form.New(opts...)
}

func send(f *form.Form[credentials], msgs ...tea.Msg) {
	for _, msg := range msgs {
		*f, _ = f.Update(msg)
	}
}

func typeText(f *form.Form[credentials], s string) {
	send(f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func key(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

func TestForm_SubmitDecodesValues(t *testing.T) {
	var r recorder
	f := newCredentialsForm(&r)
	f.Focus(nil)

	typeText(&f, "alice")
	send(&f, key(tea.KeyEnter)) // enter on a text input moves on
	typeText(&f, "s3cret")
	send(&f, key(tea.KeyTab), key(tea.KeyEnter))

	if len(r.submitted) != 1 {
		t.Fatalf("expected one submit, got %d", len(r.submitted))
	}
	if got := r.submitted[0]; got.User != "alice" || got.Password != "s3cret" {
		t.Fatalf("unexpected submit data %+v", got)
	}
	if r.clicked != 0 {
		t.Fatalf("link must not be clicked by submit")
	}
}

func TestForm_FocusWrapsAround(t *testing.T) {
	var r recorder
	f := newCredentialsForm(&r)
	f.Focus(nil)

	send(&f, key(tea.KeyShiftTab))
	if f.ActiveIndex() != 3 {
		t.Fatalf("expected shift+tab from the first item to wrap to 3, got %d", f.ActiveIndex())
	}
	send(&f, key(tea.KeyTab))
	if f.ActiveIndex() != 0 {
		t.Fatalf("expected tab from the last item to wrap to 0, got %d", f.ActiveIndex())
	}
}

func TestForm_LinkRunsOnClick(t *testing.T) {
	var r recorder
	f := newCredentialsForm(&r)
	f.Focus(nil)

	send(&f, key(tea.KeyShiftTab), key(tea.KeyEnter))
	if r.clicked != 1 {
		t.Fatalf("expected link click, got %d", r.clicked)
	}
	if len(r.submitted) != 0 {
		t.Fatalf("link must not submit the form")
	}
}

func TestForm_Cancel(t *testing.T) {
	var r recorder
	f := newCredentialsForm(&r)
	f.Focus(nil)

	send(&f, key(tea.KeyEsc))
	if r.cancelled != 1 {
		t.Fatalf("expected cancel, got %d", r.cancelled)
	}
}

func TestForm_IgnoresInputWhenBlurred(t *testing.T) {
	var r recorder
	f := newCredentialsForm(&r)

	typeText(&f, "alice")
	send(&f, key(tea.KeyEsc))

	data, err := f.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.User != "" || r.cancelled != 0 {
		t.Fatalf("blurred form must ignore input, got %+v, %d cancels", data, r.cancelled)
	}
}

func TestForm_View(t *testing.T) {
	var r recorder
	f := newCredentialsForm(&r)
	f.Focus(nil)
	send(&f, tea.WindowSizeMsg{Width: 40, Height: 20})
	typeText(&f, "carol")
	send(&f, key(tea.KeyTab))
	typeText(&f, "hidden")

	view := f.View()
	if !strings.Contains(view, "carol") {
		t.Errorf("expected user value in view:\n%s", view)
	}
	if strings.Contains(view, "hidden") {
		t.Errorf("password must be masked:\n%s", view)
	}
}
