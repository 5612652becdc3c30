// Package i18n holds the message catalog used to render argparse errors.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
)

// Bundle maps message keys to format strings and renders them with a
// golang.org/x/text printer
type Bundle struct {
	mu       sync.RWMutex
	lang     language.Tag
	messages map[string]string
	catalog  *catalog.Builder
	printer  *message.Printer
}

var (
	defaultBundle     *Bundle
	defaultBundleOnce sync.Once
)

// Default returns the bundle loaded from the embedded English catalog
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		b, err := NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
		defaultBundle = b
	})

	return defaultBundle
}

// NewBundle loads the embedded English catalog
func NewBundle() (*Bundle, error) {
	data, err := defaultLocales.ReadFile(path.Join("locales", "en.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, err
	}

	return NewBundleFromMessages(messages)
}

// NewBundleFromMessages creates a bundle from an in-memory set of English messages
func NewBundleFromMessages(messages map[string]string) (*Bundle, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyTranslations
	}

	b := &Bundle{
		lang:     language.English,
		messages: make(map[string]string, len(messages)),
		catalog:  catalog.NewBuilder(),
	}
	for key, msg := range messages {
		if err := b.catalog.SetString(b.lang, key, msg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
		b.messages[key] = msg
	}
	b.printer = message.NewPrinter(b.lang, message.Catalog(b.catalog))

	return b, nil
}

// T renders the message registered under key. Unknown keys are returned verbatim.
func (b *Bundle) T(key string, args ...any) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.messages[key]; !ok {
		if len(args) > 0 {
			return fmt.Sprintf("%s %v", key, args)
		}
		return key
	}

	return b.printer.Sprintf(key, args...)
}

// HasKey checks if a key exists in the catalog
func (b *Bundle) HasKey(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.messages[key]
	return ok
}

// Keys returns all registered keys, sorted
func (b *Bundle) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.messages))
	for k := range b.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
