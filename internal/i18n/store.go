// Package i18n holds the portal's display locale and its string tables.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

type Locale string

const (
	English Locale = "en"
	Hindi   Locale = "hi"
)

// Supported lists the locales in matcher preference order.
var Supported = []Locale{English, Hindi}

//go:embed locales/*.yaml
var localeFS embed.FS

var matcher = language.NewMatcher([]language.Tag{language.English, language.Hindi})

// Store is the active locale plus the loaded tables. It is safe for
// concurrent use.
type Store struct {
	tables map[Locale]map[string]string

	mu     sync.RWMutex
	locale Locale
}

// NewStore loads the embedded tables and starts in the given locale. An empty
// locale means English.
func NewStore(initial Locale) (*Store, error) {
	if initial == "" {
		initial = English
	}

	tables := make(map[Locale]map[string]string, len(Supported))
	for _, l := range Supported {
		raw, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", l, err)
		}
		table := make(map[string]string)
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		tables[l] = table
	}

	if _, ok := tables[initial]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocale, initial)
	}
	return &Store{tables: tables, locale: initial}, nil
}

// T returns the string for key in the active locale, or key itself when the
// table has no non-empty entry for it.
func (s *Store) T(key string) string {
	s.mu.RLock()
	table := s.tables[s.locale]
	s.mu.RUnlock()

	if v := table[key]; v != "" {
		return v
	}
	return key
}

func (s *Store) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the active locale. Unsupported locales leave it as is.
func (s *Store) SetLocale(l Locale) error {
	if _, ok := s.tables[l]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, l)
	}
	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
	return nil
}

// Negotiate picks the best supported locale for an Accept-Language header.
// It does not change the active locale.
func Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Supported[idx]
}

// Translator returns a translator pinned to locale l, independent of the
// active locale.
func (s *Store) Translator(l Locale) (Pinned, error) {
	table, ok := s.tables[l]
	if !ok {
		return Pinned{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, l)
	}
	return Pinned{table: table}, nil
}

// Pinned translates against a single locale.
type Pinned struct {
	table map[string]string
}

func (p Pinned) T(key string) string {
	if v := p.table[key]; v != "" {
		return v
	}
	return key
}
