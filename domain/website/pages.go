package website

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/ganilson/synctechSite/domain/website/components"
	"github.com/ganilson/synctechSite/domain/website/content"
	"github.com/ganilson/synctechSite/pkg/seo"
)

const (
	brandName    = "Synctech"
	teaserPosts  = 3
	relatedPosts = 3
)

// Home handles GET /
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(w, r)
	p := s.page(lang, r.URL.Path)

	meta := seo.PageMetadata{
		Title:        p.T("seo.home.title"),
		Description:  p.T("seo.home.description"),
		Keywords:     p.T("seo.home.keywords"),
		CanonicalURL: s.cfg.URL("/"),
	}
	structured := []any{
		seo.Organization(brandName, s.cfg.URL("/"), s.seo.AbsoluteImage(s.cfg.DefaultImage), s.cfg.ContactEmail, "+"+s.cfg.WhatsAppNumber),
		seo.WebSite(brandName, s.cfg.URL("/"), lang),
	}

	s.render(w, r, http.StatusOK, meta, components.Layout(p, structured,
		components.Topbar(p),
		g.El("main",
			components.Hero(p, s.catalog.TechStack),
			components.Services(p, s.catalog.Services),
			components.Portfolio(p, s.catalog.Projects),
			components.AISection(p),
			components.Gallery(p, s.catalog.Gallery),
			components.Partners(p, s.catalog.Partners),
			components.BlogTeaser(p, s.posts.Latest(teaserPosts)),
			components.QuoteForm(p),
			components.Newsletter(p),
		),
		components.PageFooter(p, s.now().Year()),
	))
}

// BlogIndex handles GET /blog
func (s *Site) BlogIndex(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(w, r)
	p := s.page(lang, r.URL.Path)

	active := s.matchCategory(r.URL.Query().Get("category"))
	posts := s.posts.ByCategory(active)

	var featured *content.Post
	if f, ok := s.posts.Featured(); ok {
		featured = &f
	}

	meta := seo.PageMetadata{
		Title:        p.T("seo.blog.title"),
		Description:  p.T("seo.blog.description"),
		Keywords:     p.T("seo.blog.keywords"),
		CanonicalURL: s.cfg.URL("/blog"),
	}

	articles := make([]seo.Article, 0, len(posts))
	for _, post := range posts {
		articles = append(articles, s.article(post))
	}
	structured := []any{
		seo.Blog("Blog Synctech", s.cfg.URL("/blog"), meta.Description, articles),
		seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: brandName, Item: s.cfg.URL("/")},
			{Name: p.T("nav.blog"), Item: s.cfg.URL("/blog")},
		}),
	}

	s.render(w, r, http.StatusOK, meta, components.Layout(p, structured,
		components.Topbar(p),
		components.BlogIndex(p, featured, posts, s.posts.Categories(), active),
		components.PageFooter(p, s.now().Year()),
	))
}

// BlogPost handles GET /blog/{slug}
func (s *Site) BlogPost(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(w, r)
	p := s.page(lang, r.URL.Path)

	post, ok := s.posts.Get(chi.URLParam(r, "slug"))
	if !ok {
		s.renderNotFound(w, r, p, p.T("blogPost.notFound"), p.T("blogPost.notFoundDesc"))
		return
	}

	pageURL := s.cfg.URL("/blog/" + post.Slug)
	title := post.MetaTitle()
	if title == "" {
		title = p.T("blogPost.fallbackTitle")
	}
	description := post.MetaDescription()
	if description == "" {
		description = title
	}
	meta := seo.PageMetadata{
		Title:        title,
		Description:  description,
		Keywords:     post.SEO.Keywords,
		CanonicalURL: pageURL,
		OGType:       "article",
		ImageURL:     post.Image,
	}
	structured := []any{
		seo.BlogPosting(s.article(post), brandName),
		seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: brandName, Item: s.cfg.URL("/")},
			{Name: p.T("nav.blog"), Item: s.cfg.URL("/blog")},
			{Name: post.Title, Item: pageURL},
		}),
	}

	s.render(w, r, http.StatusOK, meta, components.Layout(p, structured,
		components.Topbar(p),
		components.BlogArticle(p, post, s.posts.Related(post.Slug, relatedPosts), pageURL),
		components.PageFooter(p, s.now().Year()),
	))
}

// NotFound handles every unknown route
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(w, r)
	p := s.page(lang, r.URL.Path)
	s.renderNotFound(w, r, p, p.T("seo.notFound.title"), p.T("notFound.desc"))
}

func (s *Site) renderNotFound(w http.ResponseWriter, r *http.Request, p components.Page, title, desc string) {
	meta := seo.PageMetadata{
		Title:       title,
		Description: p.T("seo.notFound.description"),
	}
	s.render(w, r, http.StatusNotFound, meta, components.Layout(p, nil,
		components.Topbar(p),
		components.NotFound(p, title, desc),
		components.PageFooter(p, s.now().Year()),
	))
}

// matchCategory maps a query value onto a known category, or "" for all
func (s *Site) matchCategory(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	for _, c := range s.posts.Categories() {
		if strings.EqualFold(c, q) {
			return c
		}
	}
	return ""
}

func (s *Site) article(post content.Post) seo.Article {
	image := ""
	if post.Image != "" {
		image = s.seo.AbsoluteImage(post.Image)
	}
	return seo.Article{
		Headline:      post.Title,
		Description:   post.MetaDescription(),
		URL:           s.cfg.URL("/blog/" + post.Slug),
		ImageURL:      image,
		DatePublished: post.Date,
		Author:        post.Author,
		Keywords:      strings.Join(post.Tags, ", "),
	}
}

