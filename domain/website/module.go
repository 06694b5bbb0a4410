package website

import (
	"github.com/go-chi/chi/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/ganilson/synctechSite/domain/website/content"
	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/pkg/i18n"
)

var Module = fx.Module("website",
	fx.Provide(
		NewPosts,
		content.DefaultCatalog,
		i18n.Default,
		NewSite,
		NewRouter,
	),
	fx.Invoke(Mount),
)

// NewPosts loads the blog, honouring SITE_CONTENT_DIR
func NewPosts(cfg *config.Config) (*content.Store, error) {
	return content.LoadStore(cfg.Site.ContentDir)
}

// Mount makes the site the fallback for every path echo does not route
func Mount(e *echo.Echo, site *chi.Mux) {
	h := echo.WrapHandler(site)
	e.Any("/", h)
	e.Any("/*", h)
}
