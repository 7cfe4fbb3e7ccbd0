// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil drives TUI components in tests without a terminal.
// Commands are executed synchronously and the messages they produce are fed
// back into the component until nothing is left to do.
package testutil

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

const (
	cmdTimeout = 200 * time.Millisecond
	maxSteps   = 1000
)

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// Driver feeds messages into an update function and resolves the commands it
// returns.
type Driver struct {
	t      testing.TB
	update func(tea.Msg) tea.Cmd
	// Msgs records every message delivered to the update function.
	Msgs []tea.Msg
	// Quit is set once a tea.QuitMsg was produced.
	Quit bool
}

// New drives a util.Model.
func New(t testing.TB, m util.Model) *Driver {
	return &Driver{t: t, update: m.Update}
}

// NewTea drives a tea.Model, replacing *m after every update.
func NewTea(t testing.TB, m *tea.Model) *Driver {
	return &Driver{t: t, update: func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		*m, cmd = (*m).Update(msg)
		return cmd
	}}
}

// Run resolves cmd and everything that follows from it.
func (d *Driver) Run(cmd tea.Cmd) {
	d.t.Helper()
	queue := Collect(cmd)
	for steps := 0; len(queue) > 0; steps++ {
		if steps > maxSteps {
			d.t.Fatalf("testutil: more than %d messages, possible update loop", maxSteps)
		}
		msg := queue[0]
		queue = queue[1:]

		if _, ok := msg.(tea.QuitMsg); ok {
			d.Quit = true
			continue
		}
		d.Msgs = append(d.Msgs, msg)
		queue = append(queue, Collect(d.update(msg))...)
	}
}

// Send delivers msgs one after the other.
func (d *Driver) Send(msgs ...tea.Msg) {
	d.t.Helper()
	for _, msg := range msgs {
		d.Run(func() tea.Msg { return msg })
	}
}

// Type sends s as individual rune key presses.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends special keys such as tea.KeyTab or tea.KeyEnter.
func (d *Driver) Press(keys ...tea.KeyType) {
	d.t.Helper()
	for _, k := range keys {
		d.Send(tea.KeyMsg{Type: k})
	}
}

// Collect executes cmd and returns the messages it produced, flattening
// batches and sequences. Commands still running after a short timeout (timers,
// cursor blinks) are dropped.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return nil
	}
	if msg == nil {
		return nil
	}

	// tea.BatchMsg and the unexported sequence message are both []tea.Cmd
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdSliceType) {
		var msgs []tea.Msg
		for _, c := range v.Convert(cmdSliceType).Interface().([]tea.Cmd) {
			msgs = append(msgs, Collect(c)...)
		}
		return msgs
	}

	return []tea.Msg{msg}
}

// Find returns the last recorded message of type T.
func Find[T any](d *Driver) (T, bool) {
	for i := len(d.Msgs) - 1; i >= 0; i-- {
		if msg, ok := d.Msgs[i].(T); ok {
			return msg, true
		}
	}
	var zero T
	return zero, false
}
