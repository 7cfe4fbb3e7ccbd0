// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the start of
// the TUI.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/appcadastro/internal/config"
	"github.com/toeirei/appcadastro/internal/i18n"
	"github.com/toeirei/appcadastro/internal/logging"
	"github.com/toeirei/appcadastro/ui/tui"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("appcadastro needs an interactive terminal, try 'appcadastro --help'")

// app holds what the commands share. The hooks are replaced in tests.
type app struct {
	configFile string
	verbose    bool
	logFile    string

	cfg       config.Config
	logCloser io.Closer

	isTerminal func() bool
	runTUI     func(tui.Options) error
}

func newApp() *app {
	return &app{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		runTUI: tui.Run,
	}
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	a := newApp()
	return a.execute(newRootCmd(a))
}

// execute runs cmd and logs its error while the log file is still open.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.close()
	err := cmd.Execute()
	if err != nil {
		logging.Errorf("appcadastro: %v", err)
	}
	return err
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appcadastro",
		Short: "AppCadastro is a small login and registration app for the terminal.",
		Long: `AppCadastro shows a login screen, a registration screen and a home
screen with a menu. Nothing is validated or stored: any login succeeds and
registration always returns to the login screen.

Running without a subcommand will launch the interactive TUI.`,
		Version:           compositeVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.run,
	}

	// Define flags
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Write logs to this file (the TUI owns the terminal)")
	cmd.PersistentFlags().String("guest-name", "", `Name used when logging in with a blank user (default "convidado")`)

	cmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(a),
	)

	return cmd
}

// setup loads the configuration and prepares logging and i18n for every
// command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configFile, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if a.logFile != "" {
		a.cfg.Log.File = a.logFile
	}

	a.logCloser, err = logging.Setup(logging.Options{
		File:  a.cfg.Log.File,
		Level: a.cfg.Log.Level,
		Debug: a.verbose,
	})
	if err != nil {
		return err
	}

	i18n.Init(i18n.DefaultLang)
	logging.Debugf("config loaded, guest-name=%q alt-screen=%v", a.cfg.GuestName, a.cfg.UI.AltScreen)
	return nil
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	if !a.isTerminal() {
		return ErrNotTerminal
	}

	logging.Infof("starting tui %s", compositeVersion())
	err := a.runTUI(tui.Options{
		GuestName:       a.cfg.GuestName,
		DefaultUserName: a.cfg.DefaultUserName,
		AltScreen:       a.cfg.UI.AltScreen,
		CursorBlink:     a.cfg.UI.CursorBlink,
	})
	if err != nil {
		return err
	}
	logging.Infof("tui stopped")
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	// If the flag is set but the value is empty, do nothing.
	if path == "" {
		return nil, nil
	}

	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}
