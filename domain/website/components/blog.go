package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ganilson/synctechSite/domain/website/content"
	"github.com/ganilson/synctechSite/pkg/i18n"
)

func formatDate(p Page, post content.Post) string {
	if p.Lang == i18n.English {
		return post.PublishedAt.Format("Jan 2, 2006")
	}
	return post.PublishedAt.Format("02/01/2006")
}

func PostMeta(p Page, post content.Post) g.Node {
	return Div(
		Class("post-meta"),
		Span(Icon("lucide:calendar", ""), Time(g.Attr("datetime", post.Date), g.Text(formatDate(p, post)))),
		g.If(post.ReadTime > 0, Span(Icon("lucide:clock", ""), g.Text(readTime(p, post.ReadTime)))),
		g.If(post.Author != "", Span(Icon("lucide:user", ""), g.Text(post.Author))),
	)
}

func PostCard(p Page, post content.Post) g.Node {
	href := "/blog/" + post.Slug
	return Article(
		Class("card post-card"),
		g.If(post.Image != "", A(Href(href), Img(Src(post.Image), Alt(post.Title), g.Attr("loading", "lazy")))),
		g.If(post.Category != "", Span(Class("badge"), g.Text(post.Category))),
		H3(A(Href(href), g.Text(post.Title))),
		P(g.Text(post.Excerpt)),
		PostMeta(p, post),
		A(Href(href), Class("read-more"), g.Text(p.T("blog.readMore")), Icon("lucide:arrow-right", "")),
	)
}

// BlogTeaser lists the newest posts on the home page
func BlogTeaser(p Page, posts []content.Post) g.Node {
	return Section(
		ID("blog"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeader("blog", p.T("blog.title"), p.T("blog.description")),
			Div(Class("grid grid-3"), g.Map(posts, func(post content.Post) g.Node {
				return PostCard(p, post)
			})),
			Div(Class("center"), A(Href("/blog"), Class("btn btn-ghost"), g.Text(p.T("blog.viewAll")))),
		),
	)
}

// BlogIndex renders the /blog listing. active is the selected category.
func BlogIndex(p Page, featured *content.Post, posts []content.Post, categories []string, active string) g.Node {
	return Main(
		Class("section blog-index"),
		Div(
			Class("container"),
			SectionHeader("blog", p.T("blog.title"), p.T("blog.description")),

			g.Iff(featured != nil && active == "", func() g.Node {
				return Article(
					Class("card featured-post"),
					Span(Class("badge"), g.Text(p.T("blog.featured"))),
					H2(A(Href("/blog/"+featured.Slug), g.Text(featured.Title))),
					P(g.Text(featured.Excerpt)),
					PostMeta(p, *featured),
				)
			}),

			Nav(
				Class("category-filter"),
				g.Attr("aria-label", p.T("blog.filterBy")),
				categoryLink(p.T("blog.all"), "/blog", active == ""),
				g.Map(categories, func(c string) g.Node {
					return categoryLink(c, "/blog?category="+url.QueryEscape(c), c == active)
				}),
			),

			Div(Class("grid grid-3"), g.Map(posts, func(post content.Post) g.Node {
				return PostCard(p, post)
			})),
		),
	)
}

func categoryLink(label, href string, active bool) g.Node {
	return A(
		Href(href),
		Class("chip"),
		g.If(active, g.Attr("aria-current", "page")),
		g.Text(label),
	)
}

// BlogArticle renders one post. pageURL is the canonical address used for sharing.
func BlogArticle(p Page, post content.Post, related []content.Post, pageURL string) g.Node {
	share := url.QueryEscape(pageURL)
	text := url.QueryEscape(post.Title + " " + pageURL)

	return Main(
		Class("section blog-post"),
		Article(
			Class("container narrow"),
			A(Href("/blog"), Class("back-link"), Icon("lucide:arrow-left", ""), g.Text(p.T("blogPost.backToBlog"))),
			g.If(post.Category != "", Span(Class("badge"), g.Text(post.Category))),
			H1(g.Text(post.Title)),
			PostMeta(p, post),
			g.If(post.Image != "", Img(Class("post-cover"), Src(post.Image), Alt(post.Title))),
			Div(Class("prose"), g.Raw(post.HTML)),

			g.If(len(post.Tags) > 0, Div(
				Class("post-tags"),
				Span(g.Text(p.T("blogPost.tags")+":")),
				g.Map(post.Tags, Tag),
			)),

			Div(
				Class("share"),
				Span(g.Text(p.T("blogPost.share")+":")),
				ExternalLink("https://wa.me/?text="+text, Icon("lucide:message-circle", "WhatsApp")),
				ExternalLink("https://www.linkedin.com/sharing/share-offsite/?url="+share, Icon("lucide:linkedin", "LinkedIn")),
				ExternalLink("https://twitter.com/intent/tweet?url="+share, Icon("lucide:twitter", "Twitter")),
			),
		),

		g.If(len(related) > 0, Div(
			Class("container related"),
			H2(g.Text(p.T("blogPost.relatedPosts"))),
			Div(Class("grid grid-3"), g.Map(related, func(r content.Post) g.Node {
				return PostCard(p, r)
			})),
		)),
	)
}
