// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the message catalog against the Go sources.
// It reports ids passed to i18n.T that the primary locale does not define,
// ids the primary locale defines that nothing uses, ids other locales lack,
// and hardcoded label strings handed to UI constructors.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "pt-BR.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") and i18n.T("prefix." + dynamic)
	reUsedKey   = regexp.MustCompile(`i18n\.T\("([^"]+)"(\s*\+)?`)
	reCall      = regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	reKeyLike   = regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)
	reAllCaps   = regexp.MustCompile(`^[A-Z_]+$`)
	reFormatStr = regexp.MustCompile(`^[\s%.,:;()#\d\w-]*%[\s\w-]*$`)
)

// constructors whose first string argument ends up on screen
var labelFuncs = map[string]struct{}{
	"NewText":     {},
	"NewPassword": {},
	"NewButton":   {},
	"NewLink":     {},
	"Render":      {},
}

// usage is what the sources ask of the catalog.
type usage struct {
	keys     map[string]struct{}
	prefixes map[string]struct{}
}

func (u usage) uses(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	for prefix := range u.prefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func main() {
	os.Exit(run(projectRoot, os.Stdout))
}

func run(root string, out io.Writer) int {
	fmt.Fprintln(out, "🔍 Running i18n linter...")

	used, err := findUsedKeys(root)
	if err != nil {
		fmt.Fprintf(out, "❌ Error finding used keys: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "✅ Found %d translation ids and %d id prefixes in source code.\n", len(used.keys), len(used.prefixes))

	dir := filepath.Join(root, localesDir)
	localeFiles, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Fprintf(out, "❌ Error finding locale files: %v\n", err)
		return 1
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		fmt.Fprintf(out, "❌ Error loading primary locale '%s': %v\n", primaryLocale, err)
		return 1
	}
	fmt.Fprintf(out, "✅ Loaded %d keys from primary locale (%s).\n\n", len(primaryKeys), primaryLocale)

	failed := false

	fmt.Fprintln(out, "--- Checking for Undefined Keys (used in code but not in primary locale) ---")
	undefined := sortedMissing(used.keys, primaryKeys)
	for _, key := range undefined {
		fmt.Fprintf(out, "  - Undefined: %s\n", key)
	}
	if len(undefined) == 0 {
		fmt.Fprintln(out, "  ✨ None found.")
	}
	failed = failed || len(undefined) > 0
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Checking for Orphaned Keys (in primary locale but not used in code) ---")
	var orphaned []string
	for key := range primaryKeys {
		if !used.uses(key) {
			orphaned = append(orphaned, key)
		}
	}
	sort.Strings(orphaned)
	for _, key := range orphaned {
		fmt.Fprintf(out, "  - Orphaned: %s\n", key)
	}
	if len(orphaned) == 0 {
		fmt.Fprintln(out, "  ✨ None found.")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Checking for Missing Keys (in primary locale but not in others) ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}

		fmt.Fprintf(out, "Checking %s:\n", file)
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Fprintf(out, "  - ❌ Error loading %s: %v\n", file, err)
			failed = true
			continue
		}

		missing := sortedMissing(primaryKeys, secondaryKeys)
		for _, key := range missing {
			fmt.Fprintf(out, "  - Missing: %s\n", key)
		}
		if len(missing) == 0 {
			fmt.Fprintln(out, "  ✨ All keys present.")
		}
		failed = failed || len(missing) > 0
	}

	untranslated, err := findUntranslatedStrings(root, primaryKeys)
	if err != nil {
		fmt.Fprintf(out, "❌ Error finding untranslated strings: %v\n", err)
		return 1
	}

	// warnings only
	fmt.Fprintln(out, "\n--- Checking for Potentially Untranslated Strings ---")
	if len(untranslated) > 0 {
		literals := make([]string, 0, len(untranslated))
		for literal := range untranslated {
			literals = append(literals, literal)
		}
		sort.Strings(literals)

		for _, literal := range literals {
			loc := untranslated[literal][0]
			fmt.Fprintf(out, "  - Potential: \"%s\" (found in %s:%d)\n", literal, loc.Filepath, loc.Line)
		}
	} else {
		fmt.Fprintln(out, "  ✨ None found.")
	}

	fmt.Fprintln(out, "\n--- Linter Finished ---")
	switch {
	case failed:
		fmt.Fprintln(out, "❌ Found issues that need to be addressed.")
		return 1
	case len(orphaned) > 0:
		fmt.Fprintln(out, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(out, "✅ All translation files are consistent!")
	}
	return 0
}

// sortedMissing returns the keys of want that are absent from have.
func sortedMissing(want, have map[string]struct{}) []string {
	var missing []string
	for key := range want {
		if _, ok := have[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// walkSources calls fn for every non-test .go file below root.
// tools/ and directories starting with "_" or "." are skipped.
func walkSources(root string, fn func(path string, content []byte) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, content)
	})
}

// findUsedKeys scans all .go files for i18n.T calls.
// An id followed by + is recorded as a prefix of dynamically built ids.
func findUsedKeys(root string) (usage, error) {
	used := usage{
		keys:     make(map[string]struct{}),
		prefixes: make(map[string]struct{}),
	}

	err := walkSources(root, func(_ string, content []byte) error {
		for _, match := range reUsedKey.FindAllStringSubmatch(string(content), -1) {
			if match[2] != "" {
				used.prefixes[match[1]] = struct{}{}
			} else {
				used.keys[match[1]] = struct{}{}
			}
		}
		return nil
	})

	return used, err
}

// findUntranslatedStrings scans for literal labels handed to UI constructors.
func findUntranslatedStrings(root string, allKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)

	err := walkSources(root, func(path string, content []byte) error {
		for i, line := range strings.Split(string(content), "\n") {
			for _, match := range reCall.FindAllStringSubmatch(line, -1) {
				funcName, literal := match[2], match[3]

				if _, ok := labelFuncs[funcName]; !ok {
					continue
				}
				if _, exists := allKeys[literal]; exists {
					continue
				}
				if looksLikeCode(literal) {
					continue
				}

				untranslated[literal] = append(untranslated[literal], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})

	return untranslated, err
}

// looksLikeCode filters literals that are not prose: ids, key names,
// constants and bare format strings.
func looksLikeCode(literal string) bool {
	switch {
	case reKeyLike.MatchString(literal):
		return true
	case len([]rune(literal)) < 4:
		return true
	case reAllCaps.MatchString(literal):
		return true
	case reFormatStr.MatchString(literal) && !strings.Contains(literal, " "):
		return true
	}
	return false
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
// go-i18n accepts both the nested and the dotted form, so both end up equal.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
