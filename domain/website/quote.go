package website

import (
	"net/http"
	"net/url"
	"strings"
)

const whatsAppBase = "https://wa.me/"

var projectTypes = map[string]bool{
	"mobile":     true,
	"web":        true,
	"hybrid":     true,
	"consulting": true,
}

// QuoteURL builds the WhatsApp composer link for a quote request
func QuoteURL(number, message string) string {
	return whatsAppBase + number + "?text=" + url.QueryEscape(message)
}

// quoteMessage composes the prefilled WhatsApp text
func quoteMessage(greeting, typeLabel, typeValue, details string) string {
	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n*")
	b.WriteString(typeLabel)
	b.WriteString(":* ")
	b.WriteString(strings.ToUpper(typeValue))
	if details = strings.TrimSpace(details); details != "" {
		b.WriteString("\n")
		b.WriteString(details)
	}
	return b.String()
}

// Quote handles GET /quote by redirecting to WhatsApp with the request prefilled
func (s *Site) Quote(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(w, r)
	p := s.page(lang, r.URL.Path)

	kind := r.URL.Query().Get("type")
	if !projectTypes[kind] {
		kind = "web"
	}

	msg := quoteMessage(
		p.T("quote.greeting"),
		p.T("quote.type"),
		p.T("quote.types."+kind),
		r.URL.Query().Get("details"),
	)
	http.Redirect(w, r, QuoteURL(s.cfg.WhatsAppNumber, msg), http.StatusFound)
}
