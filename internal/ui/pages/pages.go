// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pages holds the static informational pages of the client — about,
// contact, legal notice, and privacy — in both languages, and renders them
// for the terminal.
package pages

import (
	"github.com/charmbracelet/glamour"

	"github.com/mintzukunft/mintelligent-tui/internal/locale"
)

// Page identifies a static page.
type Page string

const (
	PageAbout       Page = "about"
	PageContact     Page = "contact"
	PageImpressum   Page = "impressum"
	PageDatenschutz Page = "datenschutz"
)

// All lists the pages in navigation order.
var All = []Page{PageAbout, PageContact, PageImpressum, PageDatenschutz}

// Title returns the localized navigation title.
func (p Page) Title(lang locale.Language) string {
	titles := map[Page][2]string{
		PageAbout:       {"Über uns", "About"},
		PageContact:     {"Kontakt", "Contact"},
		PageImpressum:   {"Impressum", "Legal notice"},
		PageDatenschutz: {"Datenschutz", "Privacy"},
	}
	pair, ok := titles[p]
	if !ok {
		return string(p)
	}
	if lang == locale.LangEnglish {
		return pair[1]
	}
	return pair[0]
}

// Content returns the page body as Markdown in the requested language.
// Unknown pages return an empty string.
func Content(p Page, lang locale.Language) string {
	var byLang map[locale.Language]string
	switch p {
	case PageAbout:
		byLang = aboutContent
	case PageContact:
		byLang = contactContent
	case PageImpressum:
		byLang = impressumContent
	case PageDatenschutz:
		byLang = datenschutzContent
	default:
		return ""
	}
	if text, ok := byLang[lang]; ok {
		return text
	}
	// German is the primary language and the fallback.
	return byLang[locale.LangGerman]
}

// Render renders the page for the terminal at the given width. If the
// renderer cannot be constructed the raw Markdown is returned; the page is
// still readable.
func Render(p Page, lang locale.Language, width int) string {
	content := Content(p, lang)
	if width < 20 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
