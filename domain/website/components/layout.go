package components

import (
	"github.com/ganilson/synctechSite/pkg/seo"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Layout renders the full document. The head carries only placeholders for
// the managed tags; the render pipeline synchronizes them per page.
func Layout(p Page, structured []any, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(p.Lang),
			Class("dark"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text("Synctech")),
				Meta(Name("description"), Content("")),
				Meta(Name("theme-color"), Content("#050816")),
				Meta(g.Attr("property", "og:site_name"), Content("Synctech")),
				Meta(Name("twitter:card"), Content("summary_large_image")),

				Link(Rel("icon"), Href("/static/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("alternate"), g.Attr("hreflang", "pt"), Href(p.LangURL("pt"))),
				Link(Rel("alternate"), g.Attr("hreflang", "en"), Href(p.LangURL("en"))),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				g.Map(structured, func(v any) g.Node {
					return Script(Type("application/ld+json"), g.Raw(seo.JSON(v)))
				}),

				Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js"), Defer()),
			),
			Body(
				g.Attr("data-lang", p.Lang),
				g.Group(content),
				ChatWidget(p),
				Script(Src("/static/js/lang.js"), Defer()),
				Script(Src("/static/js/chat.js"), Defer()),
			),
		),
	})
}
