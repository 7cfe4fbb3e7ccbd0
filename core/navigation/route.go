// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package navigation holds the navigation state of an AppCadastro session:
// the typed routes between screens and the history they are pushed onto.
package navigation

import "fmt"

// Screen identifies one navigable surface of the app.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenHome
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenHome:
		return "home"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Params carries the optional payload of a route.
// The zero value carries nothing.
type Params struct {
	userName    string
	hasUserName bool
}

// WithUserName returns params carrying name.
func WithUserName(name string) Params {
	return Params{userName: name, hasUserName: true}
}

// UserName returns the carried user name and whether one was set.
func (p Params) UserName() (string, bool) {
	return p.userName, p.hasUserName
}

// UserNameOr returns the carried user name, or fallback if none was set.
func (p Params) UserNameOr(fallback string) string {
	if p.hasUserName {
		return p.userName
	}
	return fallback
}

// Route is a destination plus its params.
type Route struct {
	Screen Screen
	Params Params
}

func To(screen Screen) Route {
	return Route{Screen: screen}
}

func ToWith(screen Screen, params Params) Route {
	return Route{Screen: screen, Params: params}
}

func (r Route) String() string {
	if name, ok := r.Params.UserName(); ok {
		return fmt.Sprintf("%s{userName=%q}", r.Screen, name)
	}
	return r.Screen.String()
}

// RequestKind tells the controller how to apply a Request.
type RequestKind int

const (
	// Push makes the request's route the new current route.
	Push RequestKind = iota
	// Back restores the previous route. The request's route is ignored.
	Back
)

func (k RequestKind) String() string {
	switch k {
	case Push:
		return "push"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Request is a navigation instruction issued by a screen.
type Request struct {
	Kind  RequestKind
	Route Route
}

func PushRequest(route Route) Request {
	return Request{Kind: Push, Route: route}
}

func BackRequest() Request {
	return Request{Kind: Back}
}
