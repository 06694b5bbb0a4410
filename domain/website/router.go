package website

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticFS embed.FS

// NewRouter builds the site router
func NewRouter(s *Site) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(middleware.CleanPath)
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5, "text/html", "text/css", "application/javascript", "application/xml", "image/svg+xml"))

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.SetHeader("Cache-Control", "public, max-age=86400"))
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	})

	r.Get("/", s.Home)
	r.Get("/blog", s.BlogIndex)
	r.Get("/blog/{slug}", s.BlogPost)
	r.Get("/quote", s.Quote)
	r.Get("/sitemap.xml", s.Sitemap)
	r.Get("/robots.txt", s.Robots)

	r.NotFound(s.NotFound)

	return r, nil
}
