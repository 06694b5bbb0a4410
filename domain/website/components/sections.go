package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ganilson/synctechSite/domain/website/content"
)

func Services(p Page, services []content.Service) g.Node {
	return Section(
		ID("services"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeader("services", p.T("services.title"), ""),
			Div(
				Class("grid grid-5"),
				g.Map(services, func(s content.Service) g.Node {
					return Article(
						Class("card service-card"),
						Icon(s.Icon, ""),
						H3(g.Text(p.T("services."+s.Key+".title"))),
						P(g.Text(p.T("services."+s.Key+".desc"))),
					)
				}),
			),
		),
	)
}

func Portfolio(p Page, projects []content.Project) g.Node {
	return Section(
		ID("portfolio"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeader("portfolio", p.T("portfolio.title"), p.T("portfolio.subtitle")),
			Div(
				Class("grid grid-3"),
				g.Map(projects, func(pr content.Project) g.Node {
					key := "portfolio." + pr.Key
					return Article(
						Class("card project-card"),
						g.Attr("style", "--accent: "+pr.Color),
						P(Class("project-subtitle"), g.Text(p.T(key+".subtitle"))),
						H3(g.Text(p.T(key+".title"))),
						P(g.Text(p.T(key+".description"))),
						P(Class("project-stack-label"), g.Text(p.T("portfolio.techStack"))),
						Div(Class("tags"), g.Map(pr.Tags, Tag)),
						ExternalLink(pr.URL, Class("btn btn-ghost"), g.Text(p.T("portfolio.viewProject")), Icon("lucide:external-link", "")),
					)
				}),
			),
		),
	)
}

// QuoteForm submits to /quote, which redirects to the WhatsApp composer
func QuoteForm(p Page) g.Node {
	types := []string{"mobile", "web", "hybrid", "consulting"}

	return Section(
		ID("quote"),
		Class("section section-accent"),
		Div(
			Class("container narrow"),
			SectionHeader("quote", p.T("quote.title"), p.T("quote.desc")),
			Form(
				Class("quote-form"),
				Action("/quote"),
				Method("get"),
				Input(Type("hidden"), Name("lang"), Value(p.Lang)),
				Label(g.Attr("for", "quote-type"), g.Text(p.T("quote.type"))),
				Select(
					ID("quote-type"),
					Name("type"),
					g.Map(types, func(t string) g.Node {
						return Option(Value(t), g.Text(p.T("quote.types."+t)))
					}),
				),
				Label(g.Attr("for", "quote-details"), g.Text(p.T("quote.details"))),
				Textarea(
					ID("quote-details"),
					Name("details"),
					g.Attr("rows", "5"),
					Placeholder(p.T("quote.placeholder")),
					Required(),
				),
				Button(Type("submit"), Class("btn btn-primary"), Icon("lucide:send", ""), g.Text(p.T("quote.submit"))),
			),
		),
	)
}

func Gallery(p Page, photos []content.Photo) g.Node {
	return Section(
		ID("gallery"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeader("gallery", p.T("gallery.title"), p.T("gallery.desc")),
			Div(
				Class("grid grid-3 gallery"),
				g.Map(photos, func(ph content.Photo) g.Node {
					return Figure(
						Img(Src(ph.Image), Alt(ph.Alt), g.Attr("loading", "lazy")),
						FigCaption(g.Text(p.T("gallery.events"))),
					)
				}),
			),
		),
	)
}

func Partners(p Page, partners []content.Partner) g.Node {
	return Section(
		ID("partners"),
		Class("section"),
		Div(
			Class("container"),
			SectionHeader("partners", p.T("partners.title"), p.T("partners.desc")),
			Ul(
				Class("partner-wall"),
				g.Map(partners, func(pa content.Partner) g.Node {
					return Li(ExternalLink(pa.URL, Class("partner"), g.Text(pa.Name)))
				}),
			),
		),
	)
}

// Newsletter is presentational; the form posts nowhere
func Newsletter(p Page) g.Node {
	return Section(
		ID("newsletter"),
		Class("section section-accent"),
		Div(
			Class("container narrow center"),
			Span(Class("badge"), g.Text(p.T("newsletter.badge"))),
			H2(g.Text(p.T("newsletter.title"))),
			P(g.Text(p.T("newsletter.desc"))),
			Form(
				Class("newsletter-form"),
				g.Attr("onsubmit", "event.preventDefault(); this.reset();"),
				Input(Type("email"), Name("email"), Placeholder(p.T("newsletter.placeholder")), Required()),
				Button(Type("submit"), Class("btn btn-primary"), g.Text(p.T("newsletter.button"))),
			),
		),
	)
}

func AISection(p Page) g.Node {
	return Section(
		ID("ai"),
		Class("section"),
		Div(
			Class("container ai-section"),
			Span(Class("badge"), g.Text(p.T("ai.powered"))),
			H2(g.Text(p.T("ai.title"))),
			P(g.Text(p.T("ai.desc"))),
			Ul(
				Class("ai-questions"),
				g.Map(p.List("ai.questions"), func(q string) g.Node {
					return Li(Button(Type("button"), Class("btn btn-ghost"), g.Attr("data-chat-question", q), g.Text(q)))
				}),
			),
		),
	)
}

func PageFooter(p Page, year int) g.Node {
	services := []string{"web", "mobile", "consulting", "cloud"}

	return Footer(
		ID("contact"),
		Class("footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Logo(),
				P(g.Text(p.T("footer.desc"))),
				g.If(p.Email != "", P(A(Href("mailto:"+p.Email), Icon("lucide:mail", ""), g.Text(p.Email)))),
				g.If(p.Phone != "", P(A(Href("tel:"+p.Phone), Icon("lucide:phone", ""), g.Text(p.Phone)))),
			),
			Div(
				P(Class("footer-heading"), g.Text(p.T("footer.services"))),
				Ul(g.Map(services, func(s string) g.Node {
					return Li(A(Href("/#services"), g.Text(p.T("services."+s+".title"))))
				})),
			),
			Div(
				P(Class("footer-heading"), g.Text(p.T("footer.legal"))),
				Ul(
					Li(A(Href("#"), g.Text(p.T("footer.privacy")))),
					Li(A(Href("#"), g.Text(p.T("footer.terms")))),
					Li(A(Href("/blog"), g.Text(p.T("nav.blog")))),
				),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Textf("© %d Synctech. %s", year, p.T("footer.rights"))),
			P(g.Text(p.T("footer.madeIn"))),
		),
	)
}

func NotFound(p Page, title, desc string) g.Node {
	return Main(
		Class("section not-found"),
		Div(
			Class("container narrow center"),
			H1(Class("gradient-text"), g.Text(p.T("notFound.title"))),
			H2(g.Text(title)),
			P(g.Text(desc)),
			A(Href("/"), Class("btn btn-primary"), g.Text(p.T("notFound.home"))),
		),
	)
}
