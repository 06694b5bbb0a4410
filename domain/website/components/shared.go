package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Span(
		Class("logo"),
		Span(Class("logo-mark"), g.Text("S")),
		Span(Class("logo-text"), g.Text("Synctech")),
	)
}

// Icon renders an iconify icon such as "lucide:globe"
func Icon(name, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify icon"),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify icon"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func SectionHeader(id, title, desc string) g.Node {
	return Div(
		Class("section-header"),
		H2(ID(id+"-title"), g.Text(title)),
		g.If(desc != "", P(Class("section-desc"), g.Text(desc))),
	)
}

func Tag(text string) g.Node {
	return Span(Class("tag"), g.Text(text))
}

func ExternalLink(href string, children ...g.Node) g.Node {
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), g.Group(children))
}

func readTime(p Page, minutes int) string {
	return fmt.Sprintf("%d %s", minutes, p.T("blogPost.readTime"))
}
