// Package htmlhead binds seo mutations to an x/net/html document.
package htmlhead

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ganilson/synctechSite/pkg/seo"
)

var ErrNoHead = errors.New("document has no head element")

// FindHead returns the first <head> element of doc, or nil.
func FindHead(doc *html.Node) *html.Node {
	return findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Head
	})
}

// Snapshot collects the title and every addressable meta/link tag in the head.
func Snapshot(doc *html.Node) seo.Head {
	var h seo.Head
	head := FindHead(doc)
	if head == nil {
		return h
	}
	walk(head, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.Title:
			h.Title = textOf(n)
		case atom.Meta:
			content := attr(n, "content")
			if name := attr(n, "name"); name != "" {
				h.Tags = append(h.Tags, seo.NameTag(name, content))
			}
			if prop := attr(n, "property"); prop != "" {
				h.Tags = append(h.Tags, seo.PropertyTag(prop, content))
			}
		case atom.Link:
			if rel := attr(n, "rel"); rel != "" {
				h.Tags = append(h.Tags, seo.LinkTag(rel, attr(n, "href")))
			}
		}
	})
	return h
}

// Sync brings the head of doc in line with meta.
func Sync(doc *html.Node, s *seo.Synchronizer, meta seo.PageMetadata, pageURL string) error {
	head := FindHead(doc)
	if head == nil {
		return ErrNoHead
	}
	for _, m := range s.Apply(Snapshot(doc), meta, pageURL) {
		switch m.Op {
		case seo.OpSetTitle:
			setTitle(head, m.Title)
		case seo.OpUpdate:
			if el := findTag(head, m.Tag); el != nil {
				setAttr(el, m.Tag.ValueAttr, m.Tag.Value)
				continue
			}
			head.AppendChild(newTag(m.Tag))
		case seo.OpInsert:
			head.AppendChild(newTag(m.Tag))
		}
	}
	return nil
}

// SyncHTML parses r, syncs its head and renders the result to w.
func SyncHTML(w io.Writer, r io.Reader, s *seo.Synchronizer, meta seo.PageMetadata, pageURL string) error {
	doc, err := html.Parse(r)
	if err != nil {
		return err
	}
	if err := Sync(doc, s, meta, pageURL); err != nil {
		return err
	}
	return html.Render(w, doc)
}

func setTitle(head *html.Node, title string) {
	el := findFirst(head, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Title
	})
	if el == nil {
		el = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		head.InsertBefore(el, head.FirstChild)
	}
	for c := el.FirstChild; c != nil; {
		next := c.NextSibling
		el.RemoveChild(c)
		c = next
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

func findTag(head *html.Node, t seo.Tag) *html.Node {
	return findFirst(head, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == t.Element && attr(n, t.KeyAttr) == t.Key
	})
}

func newTag(t seo.Tag) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     t.Element,
		DataAtom: atom.Lookup([]byte(t.Element)),
		Attr: []html.Attribute{
			{Key: t.KeyAttr, Val: t.Key},
			{Key: t.ValueAttr, Val: t.Value},
		},
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
