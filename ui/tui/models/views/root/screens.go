// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/toeirei/appcadastro/core/navigation"
	"github.com/toeirei/appcadastro/internal/i18n"
	"github.com/toeirei/appcadastro/ui/tui/models/components/router"
	"github.com/toeirei/appcadastro/ui/tui/models/views/home"
	"github.com/toeirei/appcadastro/ui/tui/models/views/login"
	"github.com/toeirei/appcadastro/ui/tui/models/views/register"
	"github.com/toeirei/appcadastro/ui/tui/util"
)

// screens maps every route to a freshly built screen.
func screens(opts Options) router.Factory {
	return func(route navigation.Route, rc router.Controll) *util.Model {
		switch route.Screen {
		case navigation.ScreenRegister:
			return util.ModelPointer(register.New(rc))
		case navigation.ScreenHome:
			return util.ModelPointer(home.New(route, opts.DefaultUserName))
		default:
			return util.ModelPointer(login.New(rc, opts.GuestName))
		}
	}
}

// ScreenTitle is the human readable name of screen.
func ScreenTitle(screen navigation.Screen) string {
	switch screen {
	case navigation.ScreenLogin:
		return i18n.T("login.title")
	case navigation.ScreenRegister:
		return i18n.T("register.title")
	case navigation.ScreenHome:
		return i18n.T("home.title")
	}
	return screen.String()
}
