// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package flow

import "github.com/toeirei/appcadastro/core/navigation"

// DefaultUserName is shown on home when the route carries no user name.
const DefaultUserName = "Usuário"

// MenuItem identifies an entry of the home menu.
type MenuItem string

const (
	MenuRegisterProduct MenuItem = "product.register"
	MenuListProducts    MenuItem = "product.list"
	MenuProfile         MenuItem = "profile"
	MenuLogout          MenuItem = "logout"
)

// HomeMenu lists the home menu entries in display order.
var HomeMenu = []MenuItem{
	MenuRegisterProduct,
	MenuListProducts,
	MenuProfile,
	MenuLogout,
}

// DividerBefore reports whether a separator is drawn above the item.
func (i MenuItem) DividerBefore() bool {
	return i == MenuLogout
}

// HomeState is the screen-local state of home.
// The user name is fixed for the lifetime of the state.
type HomeState struct {
	userName string
	menuOpen bool
}

// NewHomeState reads the user name from route, falling back to fallback.
func NewHomeState(route navigation.Route, fallback string) HomeState {
	return HomeState{userName: route.Params.UserNameOr(fallback)}
}

func (h HomeState) UserName() string { return h.userName }
func (h HomeState) MenuOpen() bool   { return h.menuOpen }

func (h *HomeState) OpenMenu()  { h.menuOpen = true }
func (h *HomeState) CloseMenu() { h.menuOpen = false }

// Select handles a menu selection. None of the items has an effect beyond
// closing the menu; logout included.
func (h *HomeState) Select(MenuItem) {
	h.CloseMenu()
}
