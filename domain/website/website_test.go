package website

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganilson/synctechSite/domain/website/content"
	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/pkg/i18n"
)

const brand = " | Synctech - Inovação e Tecnologia"

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			BaseURL:        "https://synctech.ao",
			BrandSuffix:    "Synctech - Inovação e Tecnologia",
			DefaultImage:   "/og-image.png",
			DefaultLang:    "pt",
			WhatsAppNumber: "244946808054",
			ContactEmail:   "contacto@synctech.ao",
		},
	}
}

func newTestSite(t *testing.T) *Site {
	t.Helper()
	posts, err := content.LoadStore("")
	require.NoError(t, err)
	catalog, err := content.DefaultCatalog()
	require.NoError(t, err)

	s := NewSite(testConfig(), i18n.Default(), posts, catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r, err := NewRouter(newTestSite(t))
	require.NoError(t, err)
	return r
}

func get(h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome_HeadIsSynchronized(t *testing.T) {
	rec := get(newTestRouter(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Software House em Angola"+brand+"</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://synctech.ao/"/>`)
	assert.Contains(t, body, `property="og:type" content="website"`)
	assert.Contains(t, body, `property="og:image" content="https://synctech.ao/og-image.png"`)
	assert.Contains(t, body, `"@type":"Organization"`)
	assert.Equal(t, 1, strings.Count(body, `name="description"`), "description must be updated in place")
	assert.Equal(t, 1, strings.Count(body, "<title>"))
}

func TestHome_LanguageResolution(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name     string
		target   string
		header   []string
		wantLang string
	}{
		{"default", "/", nil, "pt"},
		{"query", "/?lang=en", nil, "en"},
		{"query region", "/?lang=en-GB", nil, "en"},
		{"unsupported query", "/?lang=fr", nil, "pt"},
		{"cookie", "/", []string{"Cookie", "lang=en"}, "en"},
		{"bad cookie", "/", []string{"Cookie", "lang=xx"}, "pt"},
		{"accept language", "/", []string{"Accept-Language", "en-US,en;q=0.9"}, "en"},
		{"query beats cookie", "/?lang=pt", []string{"Cookie", "lang=en"}, "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(h, tt.target, tt.header...)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `<html lang="`+tt.wantLang+`"`)
		})
	}
}

func TestHome_LangQueryIsRemembered(t *testing.T) {
	rec := get(newTestRouter(t), "/?lang=en")

	res := rec.Result()
	defer res.Body.Close()
	require.Len(t, res.Cookies(), 1)
	c := res.Cookies()[0]
	assert.Equal(t, "lang", c.Name)
	assert.Equal(t, "en", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Contains(t, rec.Body.String(), "<title>Software House in Angola"+brand+"</title>")
}

func TestBlogIndex(t *testing.T) {
	h := newTestRouter(t)

	rec := get(h, "/blog")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<link rel="canonical" href="https://synctech.ao/blog"/>`)
	assert.Contains(t, body, `"@type":"Blog"`)
	assert.Contains(t, body, "/blog/automacao-ia-negocios")
	assert.Contains(t, body, "/blog/infraestrutura-cloud-pme")

	rec = get(h, "/blog?category=cloud")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "/blog/infraestrutura-cloud-pme")
	assert.NotContains(t, body, `href="/blog/automacao-ia-negocios"`)

	rec = get(h, "/blog?category=unknown")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/blog/automacao-ia-negocios")
}

func TestBlogPost(t *testing.T) {
	rec := get(newTestRouter(t), "/blog/apps-mobile-flutter-angola")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Flutter vs React Native em Angola | Guia Synctech"+brand+"</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://synctech.ao/blog/apps-mobile-flutter-angola"/>`)
	assert.Contains(t, body, `property="og:type" content="article"`)
	assert.Contains(t, body, `property="og:image" content="https://images.unsplash.com/`)
	assert.Contains(t, body, `name="keywords" content="flutter angola`)
	assert.Contains(t, body, `"@type":"BlogPosting"`)
	assert.Contains(t, body, "<table>")
}

func TestNotFound(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name      string
		target    string
		wantTitle string
	}{
		{"unknown post", "/blog/does-not-exist", "Artigo não encontrado"},
		{"unknown route", "/nowhere", "Página não encontrada"},
		{"unknown route en", "/nowhere?lang=en", "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(h, tt.target)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "<title>"+tt.wantTitle+brand+"</title>")
		})
	}
}

func TestQuote_RedirectsToWhatsApp(t *testing.T) {
	rec := get(newTestRouter(t), "/quote?type=mobile&details=Loja+online&lang=en")

	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "wa.me", loc.Host)
	assert.Equal(t, "/244946808054", loc.Path)
	assert.Equal(t, "Hello Synctech! I would like a quote.\n\n*Project Type:* MOBILE APP\nLoja online", loc.Query().Get("text"))
}

func TestQuote_UnknownTypeFallsBackToWeb(t *testing.T) {
	rec := get(newTestRouter(t), "/quote?type=rocket")

	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Contains(t, loc.Query().Get("text"), "WEBSITE / WEBAPP")
}

func TestQuoteURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/244900000000?text=Ol%C3%A1+%2A", QuoteURL("244900000000", "Olá *"))
}

func TestSitemapAndRobots(t *testing.T) {
	h := newTestRouter(t)

	rec := get(h, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://synctech.ao/</loc>")
	assert.Contains(t, body, "<loc>https://synctech.ao/blog/apps-mobile-flutter-angola</loc>")
	assert.Contains(t, body, "<lastmod>2025-03-12</lastmod>")

	rec = get(h, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /api/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://synctech.ao/sitemap.xml")
}

func TestStatic(t *testing.T) {
	h := newTestRouter(t)

	rec := get(h, "/static/js/chat.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "/api/chat")

	rec = get(h, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHead(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMount_SiteIsEchoFallback(t *testing.T) {
	r, err := NewRouter(newTestSite(t))
	require.NoError(t, err)

	e := echo.New()
	e.GET("/api/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	Mount(e, r)

	rec := get(e, "/api/ping")
	assert.Equal(t, "pong", rec.Body.String())

	rec = get(e, "/blog")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"@type":"Blog"`)

	rec = get(e, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDisplayPhone(t *testing.T) {
	assert.Equal(t, "946808054", displayPhone("244946808054"))
	assert.Equal(t, "123", displayPhone("123"))
}
