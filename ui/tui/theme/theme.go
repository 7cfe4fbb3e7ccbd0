// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme holds the colors and shared styles of the app.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.Color("#6938EB")
	Secondary = lipgloss.Color("#878CEB")
	Link      = lipgloss.Color("#1976D2")
	Muted     = lipgloss.Color("240")
	Text      = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
)

var (
	Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(Muted)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(1, 3)
)
