// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package flow implements what the login, register and home screens do when
// the user acts on them. Every action succeeds; the only outcome is a
// navigation request or a change of screen-local state.
package flow

import (
	"strings"
	"unicode"

	"github.com/toeirei/appcadastro/core/navigation"
)

// DefaultGuestName replaces a blank user name on login.
const DefaultGuestName = "convidado"

// LoginData is the form state of the login screen.
// Password is collected but never checked.
type LoginData struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// EffectiveName returns user, or guest when user is blank.
func EffectiveName(user, guest string) string {
	if IsBlank(user) {
		return guest
	}
	return user
}

// IsBlank reports whether s is empty or consists of blank runes only.
// Blank runes are the Unicode space, line and paragraph separators
// (no-break spaces included), \t through \r and the information
// separators \x1c through \x1f. NEL (U+0085) is not blank.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isBlankRune) == ""
}

func isBlankRune(r rune) bool {
	if (r >= '\t' && r <= '\r') || (r >= '\x1c' && r <= '\x1f') {
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// SubmitLogin navigates to home carrying the effective user name.
func SubmitLogin(data LoginData, guest string) navigation.Request {
	return navigation.PushRequest(navigation.ToWith(
		navigation.ScreenHome,
		navigation.WithUserName(EffectiveName(data.User, guest)),
	))
}

// RequestRegister navigates to the register screen.
func RequestRegister() navigation.Request {
	return navigation.PushRequest(navigation.To(navigation.ScreenRegister))
}
