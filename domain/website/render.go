package website

import (
	"bytes"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/ganilson/synctechSite/pkg/logger"
	"github.com/ganilson/synctechSite/pkg/seo"
	"github.com/ganilson/synctechSite/pkg/seo/htmlhead"
)

// render writes doc with its head synchronized to meta. Every page goes
// through here, so the head always describes the page being served.
func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, meta seo.PageMetadata, doc g.Node) {
	if err := meta.Validate(); err != nil {
		s.log.Error("invalid page metadata", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var raw bytes.Buffer
	if err := doc.Render(&raw); err != nil {
		s.log.Error("render page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var out bytes.Buffer
	if err := htmlhead.SyncHTML(&out, &raw, s.seo, meta, s.cfg.URL(r.URL.Path)); err != nil {
		s.log.Error("sync head", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "Accept-Language, Cookie")
	w.WriteHeader(status)
	_, _ = out.WriteTo(w)
}
