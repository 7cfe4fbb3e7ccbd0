// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`. The test swaps `L` with
// a buffer-backed logger and restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Setup(Options{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	Infof("hidden")
	Warnf("visible %d", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("info line must be filtered at warn level: %s", data)
	}
	if !strings.Contains(string(data), "visible 2") {
		t.Fatalf("missing warn line: %s", data)
	}
}

func TestSetup_DebugOverridesLevel(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	closer, err := Setup(Options{Level: "error", Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if L.GetLevel() != clog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L.GetLevel())
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	if _, err := Setup(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
