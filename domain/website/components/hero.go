package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(p Page, techStack []string) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			P(Class("hero-tagline"), g.Text(p.T("hero.tagline"))),
			H1(
				Class("hero-title"),
				g.Text(p.T("hero.title1")),
				Br(),
				Span(Class("gradient-text"), g.Text(p.T("hero.title2"))),
			),
			P(Class("hero-subtitle"), g.Text(p.T("hero.subtitle"))),
			Div(
				Class("hero-actions"),
				A(Href("#quote"), Class("btn btn-primary"), Icon("lucide:message-circle", ""), g.Text(p.T("hero.cta"))),
				A(Href("#services"), Class("btn btn-ghost"), Icon("lucide:arrow-down", ""), g.Text(p.T("nav.services"))),
			),
			g.If(len(techStack) > 0,
				Ul(Class("tech-stack"), g.Map(techStack, func(t string) g.Node {
					return Li(Tag(t))
				})),
			),
		),
	)
}
