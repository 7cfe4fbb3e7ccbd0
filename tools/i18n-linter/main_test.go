package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	m := map[string]any{
		"top": map[string]any{
			"sub": "value",
			"arr": []any{"one", "two"},
		},
		"flat.dotted": "v",
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	if _, ok := keys["top.sub"]; !ok {
		t.Fatalf("expected top.sub in keys")
	}
	if _, ok := keys["top.arr[0]"]; !ok {
		t.Fatalf("expected top.arr[0] in keys")
	}
	if _, ok := keys["flat.dotted"]; !ok {
		t.Fatalf("expected flat.dotted in keys")
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "test.yaml")
	data, _ := yaml.Marshal(m)
	if err := os.WriteFile(p, data, 0600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	if _, ok := got["top.sub"]; !ok {
		t.Fatalf("expected loaded key top.sub")
	}
}

// writeProject lays out a tiny module with one source file and a primary locale.
func writeProject(t *testing.T, src, locale string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		filepath.Join("ui", "a.go"):              src,
		filepath.Join("tools", "x", "skip.go"):   `package x; var _ = i18n.T("tools.only")`,
		filepath.Join(localesDir, primaryLocale): locale,
		filepath.Join("ui", "a_test.go"):         `package ui; var _ = i18n.T("test.only")`,
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

const sampleSrc = `package ui
func f(id string) {
	_ = i18n.T("login.title")
	_ = i18n.T("menu." + id)
	_ = forminput.NewButton("Entrar agora", false)
	_ = forminput.NewText(i18n.T("login.user"), "")
}`

func TestFindUsedKeys(t *testing.T) {
	dir := writeProject(t, sampleSrc, "")

	used, err := findUsedKeys(dir)
	if err != nil {
		t.Fatalf("findUsedKeys failed: %v", err)
	}
	for _, key := range []string{"login.title", "login.user"} {
		if _, ok := used.keys[key]; !ok {
			t.Errorf("expected %s in used keys", key)
		}
	}
	if _, ok := used.prefixes["menu."]; !ok {
		t.Errorf("expected menu. as a dynamic prefix")
	}
	if _, ok := used.keys["tools.only"]; ok {
		t.Errorf("tools directory must be skipped")
	}
	if _, ok := used.keys["test.only"]; ok {
		t.Errorf("test files must be skipped")
	}
	if !used.uses("menu.logout") {
		t.Errorf("menu.logout must count as used through its prefix")
	}
}

func TestFindUntranslatedStrings(t *testing.T) {
	dir := writeProject(t, sampleSrc, "")

	untranslated, err := findUntranslatedStrings(dir, map[string]struct{}{"login.title": {}})
	if err != nil {
		t.Fatalf("findUntranslatedStrings failed: %v", err)
	}
	if _, ok := untranslated["Entrar agora"]; !ok {
		t.Fatalf("expected hardcoded button label to be flagged, got %v", untranslated)
	}
	if len(untranslated) != 1 {
		t.Fatalf("expected a single finding, got %v", untranslated)
	}
}

func TestRun(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		locale := "login.title: \"App login\"\nlogin.user: \"Usuário\"\nmenu.logout: \"Deslogar\"\n"
		var out bytes.Buffer
		if code := run(writeProject(t, sampleSrc, locale), &out); code != 0 {
			t.Fatalf("expected exit 0, got %d:\n%s", code, out.String())
		}
		if !strings.Contains(out.String(), "All translation files are consistent") {
			t.Fatalf("unexpected report:\n%s", out.String())
		}
	})

	t.Run("undefined", func(t *testing.T) {
		locale := "login.title: \"App login\"\n"
		var out bytes.Buffer
		if code := run(writeProject(t, sampleSrc, locale), &out); code != 1 {
			t.Fatalf("expected exit 1, got %d:\n%s", code, out.String())
		}
		if !strings.Contains(out.String(), "Undefined: login.user") {
			t.Fatalf("expected login.user to be reported:\n%s", out.String())
		}
	})

	t.Run("orphaned", func(t *testing.T) {
		locale := "login.title: \"App login\"\nlogin.user: \"Usuário\"\nold.key: \"x\"\n"
		var out bytes.Buffer
		if code := run(writeProject(t, sampleSrc, locale), &out); code != 0 {
			t.Fatalf("orphans are warnings, got exit %d:\n%s", code, out.String())
		}
		if !strings.Contains(out.String(), "Orphaned: old.key") {
			t.Fatalf("expected old.key to be reported:\n%s", out.String())
		}
	})
}
