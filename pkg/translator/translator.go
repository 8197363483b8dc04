package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator = newBundle()

type Config struct {
	TranslationFolder string
}

const (
	LanguageEn = "en"
	LanguageFr = "fr"
)

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// InitTranslator replaces the bundle with every *.toml file found in the
// folder. The language is taken from the file name, e.g. active.fr.toml.
func InitTranslator(cfg Config) error {
	bundle := newBundle()

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		Translator = bundle
		return fmt.Errorf("failed to list translation folder %q: %w", cfg.TranslationFolder, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(cfg.TranslationFolder, entry.Name())
		if _, err := bundle.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}

	Translator = bundle
	return nil
}

// Localize returns the message for key in lang, falling back to English and
// then to fallback when no file defines it.
func Localize(lang, key, fallback string) string {
	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
