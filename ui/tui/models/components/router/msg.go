// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/toeirei/appcadastro/core/navigation"
)

// Controll invoked messages
// Model-Controll -> Router

type NavigateMsg struct {
	rid     int
	screen  int
	Request navigation.Request
}

func (m NavigateMsg) routerID() int { return m.rid }

type RouterMsg interface {
	routerID() int
}

// Router invoked messages
// Router -> Parent

// RouteChangedMsg is emitted after the router switched screens.
type RouteChangedMsg struct {
	From, To navigation.Route
	Kind     navigation.RequestKind
}
