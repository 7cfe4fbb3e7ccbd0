// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for AppCadastro using
// Cobra. It loads configuration, sets up logging and the message catalog,
// and starts the TUI when run without a subcommand.
package cli
