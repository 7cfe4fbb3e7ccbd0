// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package navigation

import (
	"slices"

	"github.com/google/uuid"
)

// Observer is notified after every transition the controller applies.
type Observer func(from, to Route, kind RequestKind)

// Controller owns the navigation history of one session.
// The history is never empty: its first entry is the start route.
type Controller struct {
	id       uuid.UUID
	history  []Route
	observer Observer
}

type Option func(c *Controller)

// WithObserver registers fn to be called after each transition.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// WithSessionID overrides the random session id.
func WithSessionID(id uuid.UUID) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// NewController starts a session at start.
func NewController(start Route, opts ...Option) *Controller {
	c := &Controller{
		id:      uuid.New(),
		history: []Route{start},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSession starts a session at the login screen.
func NewSession(opts ...Option) *Controller {
	return NewController(To(ScreenLogin), opts...)
}

func (c *Controller) SessionID() uuid.UUID {
	return c.id
}

func (c *Controller) Current() Route {
	return c.history[len(c.history)-1]
}

func (c *Controller) Depth() int {
	return len(c.history)
}

// History returns a copy of the history, oldest first.
func (c *Controller) History() []Route {
	return slices.Clone(c.history)
}

// NavigateTo pushes route and makes it current.
func (c *Controller) NavigateTo(route Route) {
	from := c.Current()
	c.history = append(c.history, route)
	c.notify(from, route, Push)
}

// GoBack pops the current route and reports whether anything was popped.
// The start route is never popped.
func (c *Controller) GoBack() bool {
	if len(c.history) <= 1 {
		return false
	}
	from := c.Current()
	c.history = c.history[:len(c.history)-1]
	c.notify(from, c.Current(), Back)
	return true
}

// Apply dispatches req and reports whether the current route changed.
func (c *Controller) Apply(req Request) bool {
	switch req.Kind {
	case Push:
		c.NavigateTo(req.Route)
		return true
	case Back:
		return c.GoBack()
	}
	return false
}

func (c *Controller) notify(from, to Route, kind RequestKind) {
	if c.observer != nil {
		c.observer(from, to, kind)
	}
}
