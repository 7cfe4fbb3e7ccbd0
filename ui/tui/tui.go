// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	forminput "github.com/toeirei/appcadastro/ui/tui/models/helpers/form/input"
	"github.com/toeirei/appcadastro/ui/tui/models/views/root"
)

type Options struct {
	GuestName       string
	DefaultUserName string
	AltScreen       bool
	CursorBlink     bool

	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// NewProgram builds the program without starting it.
func NewProgram(opts Options) *tea.Program {
	if opts.CursorBlink {
		forminput.CursorMode = cursor.CursorBlink
	} else {
		forminput.CursorMode = cursor.CursorStatic
	}

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	return tea.NewProgram(
		root.New(root.Options{
			GuestName:       opts.GuestName,
			DefaultUserName: opts.DefaultUserName,
		}),
		programOpts...,
	)
}

func Run(opts Options) error {
	if _, err := NewProgram(opts).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
