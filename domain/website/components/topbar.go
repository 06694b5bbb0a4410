package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Topbar(p Page) g.Node {
	links := []struct{ href, key string }{
		{"/#services", "nav.services"},
		{"/#portfolio", "nav.portfolio"},
		{"/#gallery", "nav.gallery"},
		{"/#partners", "nav.partners"},
		{"/blog", "nav.blog"},
		{"/#contact", "nav.contact"},
	}

	return Header(
		Class("topbar"),
		g.Attr("data-at-top", "true"),
		Nav(
			Class("container topbar-inner"),
			A(Href("/"), g.Attr("aria-label", "Synctech"), Logo()),

			Input(ID("menu-toggle"), Type("checkbox"), Class("menu-toggle")),
			Label(g.Attr("for", "menu-toggle"), Class("menu-button"), Icon("lucide:menu", "Menu")),

			Ul(
				Class("nav-links"),
				g.Map(links, func(l struct{ href, key string }) g.Node {
					return Li(A(Href(l.href), g.Text(p.T(l.key))))
				}),
			),

			Div(
				Class("nav-actions"),
				A(
					Class("btn btn-ghost lang-switch"),
					Href(p.LangURL(p.OtherLang())),
					g.Attr("hreflang", p.OtherLang()),
					Icon("lucide:languages", ""),
					g.Text(p.T("nav.language")),
				),
				g.If(p.Phone != "",
					A(Class("btn btn-ghost"), Href("tel:"+p.Phone), Icon("lucide:phone", ""), g.Text(p.T("nav.callNow"))),
				),
				A(Class("btn btn-primary"), Href("/#quote"), g.Text(p.T("nav.quote"))),
			),
		),
	)
}
