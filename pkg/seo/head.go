package seo

import "fmt"

// Tag is a head element addressed by a key attribute, e.g.
// meta[name=description] or link[rel=canonical]. ValueAttr names the
// attribute that carries Value.
type Tag struct {
	Element   string
	KeyAttr   string
	Key       string
	ValueAttr string
	Value     string
}

func NameTag(name, content string) Tag {
	return Tag{Element: "meta", KeyAttr: "name", Key: name, ValueAttr: "content", Value: content}
}

func PropertyTag(property, content string) Tag {
	return Tag{Element: "meta", KeyAttr: "property", Key: property, ValueAttr: "content", Value: content}
}

func LinkTag(rel, href string) Tag {
	return Tag{Element: "link", KeyAttr: "rel", Key: rel, ValueAttr: "href", Value: href}
}

// Selector renders the lookup key in CSS selector form.
func (t Tag) Selector() string {
	return fmt.Sprintf("%s[%s=%q]", t.Element, t.KeyAttr, t.Key)
}

// Matches reports whether o addresses the same element as t.
func (t Tag) Matches(o Tag) bool {
	return t.Element == o.Element && t.KeyAttr == o.KeyAttr && t.Key == o.Key
}

// Head is a snapshot of the managed part of a document head.
type Head struct {
	Title string
	Tags  []Tag
}

// Find returns the first tag with the same selector as t.
func (h Head) Find(t Tag) (Tag, bool) {
	for _, tag := range h.Tags {
		if tag.Matches(t) {
			return tag, true
		}
	}
	return Tag{}, false
}

// Value returns the value of the first tag matching the selector.
func (h Head) Value(t Tag) string {
	found, _ := h.Find(t)
	return found.Value
}

// With returns a copy of h with muts applied.
func (h Head) With(muts []Mutation) Head {
	out := Head{Title: h.Title, Tags: append([]Tag(nil), h.Tags...)}
	for _, m := range muts {
		switch m.Op {
		case OpSetTitle:
			out.Title = m.Title
		case OpUpdate:
			for i := range out.Tags {
				if out.Tags[i].Matches(m.Tag) {
					out.Tags[i].Value = m.Tag.Value
					break
				}
			}
		case OpInsert:
			out.Tags = append(out.Tags, m.Tag)
		}
	}
	return out
}

// Op is the kind of a head mutation.
type Op int

const (
	OpSetTitle Op = iota
	OpUpdate
	OpInsert
)

func (o Op) String() string {
	switch o {
	case OpSetTitle:
		return "set-title"
	case OpUpdate:
		return "update"
	case OpInsert:
		return "insert"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Mutation is one change to a document head. Title is set for OpSetTitle,
// Tag for the others.
type Mutation struct {
	Op    Op
	Title string
	Tag   Tag
}
