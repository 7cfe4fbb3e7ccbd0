// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package flow

import "github.com/toeirei/appcadastro/core/navigation"

// RegisterData is the form state of the register screen.
// Nothing is validated: ConfirmPassword is never compared to Password.
type RegisterData struct {
	UserName        string `mapstructure:"user_name"`
	Email           string `mapstructure:"email"`
	Password        string `mapstructure:"password"`
	ConfirmPassword string `mapstructure:"confirm_password"`
}

// SubmitRegister returns to the previous screen.
func SubmitRegister(RegisterData) navigation.Request {
	return navigation.BackRequest()
}

// GoToLogin has the same effect as SubmitRegister.
func GoToLogin() navigation.Request {
	return navigation.BackRequest()
}
