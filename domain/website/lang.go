package website

import (
	"net/http"
)

const (
	langCookie = "lang"
	langMaxAge = 365 * 24 * 60 * 60
)

// resolveLang picks the page language: ?lang (remembered in a cookie),
// then the cookie, then Accept-Language, then the configured default.
func (s *Site) resolveLang(w http.ResponseWriter, r *http.Request) string {
	if q := r.URL.Query().Get("lang"); q != "" {
		lang := s.bundle.Normalize(q)
		http.SetCookie(w, &http.Cookie{
			Name:     langCookie,
			Value:    lang,
			Path:     "/",
			MaxAge:   langMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
		return lang
	}

	if c, err := r.Cookie(langCookie); err == nil && s.bundle.IsSupported(c.Value) {
		return c.Value
	}

	if h := r.Header.Get("Accept-Language"); h != "" {
		return s.bundle.Resolve(h)
	}

	return s.defaultLang
}
