// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for AppCadastro.
//
// Usage:
//
//	go run . [flags]
//	./appcadastro [flags]
//
// This launches the AppCadastro TUI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/appcadastro/ui/cli"
)

func main() {
	// the error is already printed by cobra and logged by cli.Execute
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
