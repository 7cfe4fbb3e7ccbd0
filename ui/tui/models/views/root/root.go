// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/appcadastro/buildvars"
	"github.com/toeirei/appcadastro/core/flow"
	"github.com/toeirei/appcadastro/core/navigation"
	"github.com/toeirei/appcadastro/internal/i18n"
	"github.com/toeirei/appcadastro/internal/logging"
	"github.com/toeirei/appcadastro/ui/tui/models/components/header"
	"github.com/toeirei/appcadastro/ui/tui/models/components/popup"
	"github.com/toeirei/appcadastro/ui/tui/models/components/router"
	"github.com/toeirei/appcadastro/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/appcadastro/ui/tui/models/helpers/title"
	"github.com/toeirei/appcadastro/ui/tui/models/views/footer"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

type Options struct {
	// GuestName replaces a blank user name on login.
	GuestName string
	// DefaultUserName is shown on home when no user name was passed.
	DefaultUserName string
	// Session is the navigation state to show. A new session starting at
	// login is created when nil.
	Session *navigation.Controller
}

func (o Options) withDefaults() Options {
	if flow.IsBlank(o.GuestName) {
		o.GuestName = flow.DefaultGuestName
	}
	if flow.IsBlank(o.DefaultUserName) {
		o.DefaultUserName = flow.DefaultUserName
	}
	if o.Session == nil {
		o.Session = NewSession()
	}
	return o
}

type Model struct {
	stack        *stack.Model
	router       *router.Router
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
}

func New(opts Options) *Model {
	opts = opts.withDefaults()

	// stack {
	//   header
	//   popup injector {
	//     router { login | register | home }
	//   }
	//   footer
	// }
	_router, _ := router.New(opts.Session, screens(opts))
	_header := header.New(i18n.T("app.title"), ScreenTitle(_router.Current().Screen), func(msg router.RouteChangedMsg) string {
		return ScreenTitle(msg.To.Screen)
	})
	_footer := footer.New(BaseKeyMap)

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithItem(util.ModelPointer(_header), stack.FitSize(), stack.DropKeys),
			stack.WithFocusNext(),
			stack.WithItem(util.ModelPointer(popup.NewInjector(util.ModelPointer(_router))), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(_footer), stack.FitSize(), stack.DropKeys),
		),
		router:       _router,
		footer:       _footer,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.title"), buildvars.VersionOrDefault("dev")), " | "),
	}
}

// NewSession starts a session at login that logs every transition.
func NewSession() *navigation.Controller {
	var session *navigation.Controller
	session = navigation.NewSession(navigation.WithObserver(func(from, to navigation.Route, kind navigation.RequestKind) {
		logging.Debugf("session %s: %s %s -> %s (depth %d)", session.SessionID(), kind, from, to, session.Depth())
	}))
	logging.Infof("session %s started at %s", session.SessionID(), session.Current())
	return session
}

func (m *Model) Init() tea.Cmd {
	return tea.Sequence(
		m.titleHandler.Init(),
		m.stack.Init(),
		m.stack.Focus(nil),
		windowtitle.Set(ScreenTitle(m.router.Current().Screen)),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// handle keys messages
		switch {
		case key.Matches(msg, BaseKeyMap.Exit):
			logging.Infof("exit requested at %s", m.router.Current())
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Help):
			m.footer.ToggleExpanded()
		}
	case router.RouteChangedMsg:
		// keep the window title in sync with the screen
		return m, tea.Batch(
			m.stack.Update(msg),
			windowtitle.Set(ScreenTitle(msg.To.Screen)),
		)
	}

	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// Current returns the route of the screen shown.
func (m *Model) Current() navigation.Route {
	return m.router.Current()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
