// Package i18n holds the site translations and language negotiation.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

const (
	English    = "en"
	Portuguese = "pt"
)

type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Load reads <lang>.json for every supported language from fsys.
// The fallback language must load; other missing files are skipped.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{Portuguese, English}
	}
	// fallback goes first so the matcher defaults to it
	ordered := []string{fallback}
	for _, l := range supported {
		if l != fallback {
			ordered = append(ordered, l)
		}
	}

	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	for _, l := range ordered {
		raw, err := fs.ReadFile(fsys, l+".json")
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
		b.supported = append(b.supported, l)
	}

	tags := make([]language.Tag, 0, len(b.supported))
	for _, l := range b.supported {
		tags = append(tags, language.Make(l))
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the embedded en/pt bundle with Portuguese as fallback.
func Default() *Bundle {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(localesFS, "locales")
		if err != nil {
			panic(err)
		}
		b, err := Load(sub, Portuguese, []string{Portuguese, English})
		if err != nil {
			panic(err)
		}
		defaultBundle = b
	})
	return defaultBundle
}

// Supported lists the loaded languages, fallback first.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang has a loaded dictionary.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.dict[lang]
	return ok
}

// Normalize maps lang to a supported language, or the fallback.
func (b *Bundle) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if b.IsSupported(lang) {
		return lang
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 && b.IsSupported(lang[:i]) {
		return lang[:i]
	}
	return b.fallback
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// List returns the values stored under prefix.0, prefix.1, ... in order.
func (b *Bundle) List(lang, prefix string) []string {
	var out []string
	for i := 0; ; i++ {
		key := prefix + "." + strconv.Itoa(i)
		v := b.T(lang, key)
		if v == key {
			return out
		}
		out = append(out, v)
	}
}

// Resolve chooses the best language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	if strings.TrimSpace(acceptLang) == "" {
		return b.fallback
	}
	_, idx := language.MatchStrings(b.matcher, acceptLang)
	if idx < 0 || idx >= len(b.supported) {
		return b.fallback
	}
	return b.supported[idx]
}
