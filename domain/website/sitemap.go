package website

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap handles GET /sitemap.xml
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	set := urlSet{
		XMLNS: sitemapNS,
		URLs: []sitemapURL{
			{Loc: s.cfg.URL("/"), ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: s.cfg.URL("/blog"), ChangeFreq: "weekly", Priority: "0.8"},
		},
	}
	for _, p := range s.posts.All() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      s.cfg.URL("/blog/" + p.Slug),
			LastMod:  p.Date,
			Priority: "0.6",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

// Robots handles GET /robots.txt
func (s *Site) Robots(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	fmt.Fprintf(&b, "\nSitemap: %s\n", s.cfg.URL("/sitemap.xml"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}
