// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set changes the part of the title after the delimiter.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
