// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the two-valued language preference and the bilingual
// string tables for the MINTelligent client.
package locale

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/mintzukunft/mintelligent-tui/internal/util"
)

// Language is the UI locale. Exactly two values exist; German is primary.
type Language string

const (
	LangGerman  Language = "de"
	LangEnglish Language = "en"
)

// Valid reports whether l is one of the two supported locales.
func (l Language) Valid() bool {
	return l == LangGerman || l == LangEnglish
}

// Other returns the opposite locale.
func (l Language) Other() Language {
	if l == LangGerman {
		return LangEnglish
	}
	return LangGerman
}

// String returns the BCP 47 tag of the locale.
func (l Language) String() string {
	return string(l)
}

// supportedMatcher matches environment locales against the two UI languages.
// German first: it is the default for unmatched environments.
var supportedMatcher = language.NewMatcher([]language.Tag{
	language.German,
	language.English,
})

// normalizeLocale reduces a POSIX locale name ("en_US.UTF-8", "de_DE@euro")
// to a BCP 47 tag: codeset and modifier suffixes are stripped, underscores
// become hyphens.
func normalizeLocale(val string) string {
	if i := strings.IndexAny(val, ".@"); i >= 0 {
		val = val[:i]
	}
	return strings.ReplaceAll(val, "_", "-")
}

// DetectDefault picks the first-run locale from the process environment
// (LC_ALL, LC_MESSAGES, LANG, in glibc priority order). Anything that does
// not match English falls back to German, the primary locale.
func DetectDefault() Language {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		tag, err := language.Parse(normalizeLocale(val))
		if err != nil {
			continue
		}
		_, idx, conf := supportedMatcher.Match(tag)
		if conf == language.No {
			continue
		}
		if idx == 1 {
			return LangEnglish
		}
		return LangGerman
	}
	return LangGerman
}

// =============================================================================
// PREFERENCE STORE
// =============================================================================

// Store is the durable language preference. The value is persisted as plain
// JSON under a fixed file; storage failures are silently ignored and the
// in-memory value keeps working for the rest of the session.
type Store struct {
	mu   sync.Mutex
	path string
	lang Language
	subs []func(Language)
}

// NewStore creates a store backed by path and hydrates it. A missing or
// unparseable file yields the environment-detected default.
func NewStore(path string) *Store {
	s := &Store{
		path: path,
		lang: DetectDefault(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var stored Language
	if err := json.Unmarshal(data, &stored); err == nil && stored.Valid() {
		s.lang = stored
	}
	return s
}

// Get returns the current locale.
func (s *Store) Get() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Set updates the locale, persists it, and notifies subscribers.
// Invalid values are ignored.
func (s *Store) Set(lang Language) {
	if !lang.Valid() {
		return
	}

	s.mu.Lock()
	s.lang = lang
	subs := make([]func(Language), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(lang)
	for _, fn := range subs {
		fn(lang)
	}
}

// Toggle flips between the two locales and returns the new value.
func (s *Store) Toggle() Language {
	next := s.Get().Other()
	s.Set(next)
	return next
}

// Subscribe registers fn to run after every Set. Used by views to re-render.
func (s *Store) Subscribe(fn func(Language)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Text returns the string table for the current locale.
func (s *Store) Text() *Text {
	return Strings(s.Get())
}

// persist writes the value to disk. Failures are deliberately dropped: the
// locale is not worth an error dialog and falls back to the default next run.
func (s *Store) persist(lang Language) {
	data, err := json.Marshal(lang)
	if err != nil {
		return
	}
	_ = util.AtomicWriteFile(s.path, data, 0644)
}
