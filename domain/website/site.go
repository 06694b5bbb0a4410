// Package website serves the server-rendered marketing site.
package website

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ganilson/synctechSite/domain/website/components"
	"github.com/ganilson/synctechSite/domain/website/content"
	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/pkg/i18n"
	"github.com/ganilson/synctechSite/pkg/logger"
	"github.com/ganilson/synctechSite/pkg/seo"
)

// Site holds everything the page handlers share. It is read-only after
// construction.
type Site struct {
	cfg         config.SiteConfig
	bundle      *i18n.Bundle
	seo         *seo.Synchronizer
	posts       *content.Store
	catalog     *content.Catalog
	defaultLang string
	log         *slog.Logger
	now         func() time.Time
}

// NewSite creates the site handlers
func NewSite(cfg *config.Config, bundle *i18n.Bundle, posts *content.Store, catalog *content.Catalog, log *slog.Logger) *Site {
	return &Site{
		cfg:    cfg.Site,
		bundle: bundle,
		seo: seo.New(seo.Site{
			BaseURL:      cfg.Site.BaseURL,
			BrandSuffix:  cfg.Site.BrandSuffix,
			DefaultImage: cfg.Site.DefaultImage,
		}),
		posts:       posts,
		catalog:     catalog,
		defaultLang: bundle.Normalize(cfg.Site.DefaultLang),
		log:         log.With(logger.Scope("website")),
		now:         time.Now,
	}
}

func (s *Site) page(lang, path string) components.Page {
	p := components.NewPage(s.bundle, lang, path)
	p.Email = s.cfg.ContactEmail
	p.WhatsApp = s.cfg.WhatsAppNumber
	p.Phone = displayPhone(s.cfg.WhatsAppNumber)
	return p
}

// displayPhone drops the Angolan country code from a WhatsApp number
func displayPhone(number string) string {
	return strings.TrimPrefix(number, "244")
}
