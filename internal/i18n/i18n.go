// Copyright (c) 2026 AppCadastro Team
// AppCadastro - login and registration terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n holds the message catalog of the AppCadastro user interface.
// It uses the go-i18n library to load the embedded YAML message files, so every
// label, title and hint shown by the TUI is looked up by id.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is the language the catalog is authored in.
const DefaultLang = "pt-BR"

// localeFS embeds the YAML message files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads all embedded message files and selects lang.
// Unknown languages fall back to DefaultLang.
func Init(l string) {
	bundle = i18n.NewBundle(language.MustParse(DefaultLang))
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		// a broken embedded file is a build problem; keep serving the others
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	lang = l
	localizer = i18n.NewLocalizer(bundle, l, DefaultLang)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	return lang
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied fmt-style to the translated message.
// If the id is unknown the id itself is returned.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init(DefaultLang)
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
