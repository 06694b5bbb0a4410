package seo

import "encoding/json"

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// encoding/json escapes <, > and &, so the result is safe inside a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL, email, phone string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if email != "" || phone != "" {
		cp := map[string]any{"@type": "ContactPoint", "contactType": "customer service"}
		if email != "" {
			cp["email"] = email
		}
		if phone != "" {
			cp["telephone"] = phone
		}
		m["contactPoint"] = cp
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Article describes a blog post for structured data.
type Article struct {
	Headline      string
	Description   string
	URL           string
	ImageURL      string
	DatePublished string
	Author        string
	Keywords      string
}

// BlogPosting returns a BlogPosting schema. Publisher is an Organization name.
func BlogPosting(a Article, publisher string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "BlogPosting",
		"headline": a.Headline,
	}
	for k, v := range map[string]string{
		"description":      a.Description,
		"url":              a.URL,
		"image":            a.ImageURL,
		"datePublished":    a.DatePublished,
		"keywords":         a.Keywords,
		"mainEntityOfPage": a.URL,
	} {
		if v != "" {
			m[k] = v
		}
	}
	if a.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": a.Author}
	}
	if publisher != "" {
		m["publisher"] = map[string]any{"@type": "Organization", "name": publisher}
	}
	return m
}

// Blog returns a Blog schema listing its posts.
func Blog(name, url, description string, posts []Article) map[string]any {
	items := make([]map[string]any, 0, len(posts))
	for _, p := range posts {
		item := BlogPosting(p, "")
		delete(item, "@context")
		items = append(items, item)
	}
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Blog",
		"name":     name,
		"blogPost": items,
	}
	if url != "" {
		m["url"] = url
	}
	if description != "" {
		m["description"] = description
	}
	return m
}
