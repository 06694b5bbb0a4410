// Package components renders the site pages with gomponents.
package components

import (
	"net/url"

	"github.com/ganilson/synctechSite/pkg/i18n"
)

// Page carries the per-request values every component may need
type Page struct {
	Lang string

	// Path is the request path, used by the language switch
	Path string

	Email    string
	Phone    string
	WhatsApp string

	bundle *i18n.Bundle
}

// NewPage creates the render context for one request
func NewPage(bundle *i18n.Bundle, lang, path string) Page {
	return Page{Lang: lang, Path: path, bundle: bundle}
}

// T translates key into the page language
func (p Page) T(key string) string {
	return p.bundle.T(p.Lang, key)
}

// List returns the numbered entries under prefix
func (p Page) List(prefix string) []string {
	return p.bundle.List(p.Lang, prefix)
}

// OtherLang is the language offered by the switch
func (p Page) OtherLang() string {
	if p.Lang == i18n.English {
		return i18n.Portuguese
	}
	return i18n.English
}

// LangURL links to the current path in lang
func (p Page) LangURL(lang string) string {
	path := p.Path
	if path == "" {
		path = "/"
	}
	return path + "?lang=" + url.QueryEscape(lang)
}
