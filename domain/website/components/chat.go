package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ChatWidget is the floating assistant. static/js/chat.js drives it and reads
// the localized strings from its data attributes.
func ChatWidget(p Page) g.Node {
	return Div(
		ID("chat-widget"),
		Class("chat-widget"),
		g.Attr("data-lang", p.Lang),
		g.Attr("data-welcome", p.T("ai.welcome")),
		g.Attr("data-error", p.T("ai.error")),

		Button(
			ID("chat-toggle"),
			Type("button"),
			Class("chat-toggle"),
			g.Attr("aria-controls", "chat-panel"),
			g.Attr("aria-expanded", "false"),
			Icon("lucide:bot", p.T("ai.assistantName")),
		),

		Div(
			ID("chat-panel"),
			Class("chat-panel"),
			g.Attr("hidden", ""),
			Div(
				Class("chat-header"),
				Strong(g.Text(p.T("ai.assistantName"))),
				Span(Class("chat-status"), g.Text(p.T("ai.online"))),
			),
			Div(ID("chat-log"), Class("chat-log"), g.Attr("aria-live", "polite")),
			Form(
				ID("chat-form"),
				Class("chat-form"),
				Input(ID("chat-input"), Type("text"), Name("message"), Placeholder(p.T("ai.placeholder")), g.Attr("autocomplete", "off"), Required()),
				Button(Type("submit"), Class("btn btn-primary"), g.Attr("aria-label", p.T("ai.send")), Icon("lucide:send", "")),
			),
		),
	)
}
