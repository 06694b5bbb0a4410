// Package content loads the site blog and catalog.
package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// SEO holds optional per-post metadata overrides
type SEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
}

// Post is a published blog article
type Post struct {
	Slug     string   `yaml:"slug"`
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Category string   `yaml:"category"`
	Date     string   `yaml:"date"`
	Author   string   `yaml:"author"`
	Image    string   `yaml:"image"`
	ReadTime int      `yaml:"readTime"`
	Featured bool     `yaml:"featured"`
	Tags     []string `yaml:"tags"`
	SEO      SEO      `yaml:"seo"`

	PublishedAt time.Time `yaml:"-"`

	// HTML is the rendered and sanitized body
	HTML string `yaml:"-"`
}

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	bodyPolicy = newBodyPolicy()
)

func newBodyPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	policy.AllowAttrs("loading").OnElements("img")
	return policy
}

// ParsePost reads one markdown file with YAML front matter
func ParsePost(name string, data []byte) (Post, error) {
	fm, body := splitFrontMatter(string(data))
	if strings.TrimSpace(fm) == "" {
		return Post{}, fmt.Errorf("content: %s: missing front matter", name)
	}

	var p Post
	if err := yaml.Unmarshal([]byte(fm), &p); err != nil {
		return Post{}, fmt.Errorf("content: parse front matter %s: %w", name, err)
	}
	p.Slug = strings.TrimSpace(p.Slug)
	p.Title = strings.TrimSpace(p.Title)
	if p.Slug == "" || p.Title == "" {
		return Post{}, fmt.Errorf("content: %s: slug and title are required", name)
	}
	if strings.ContainsAny(p.Slug, "/ ?#") {
		return Post{}, fmt.Errorf("content: %s: invalid slug %q", name, p.Slug)
	}

	published, err := time.Parse(dateLayout, strings.TrimSpace(p.Date))
	if err != nil {
		return Post{}, fmt.Errorf("content: %s: date must be YYYY-MM-DD: %w", name, err)
	}
	p.PublishedAt = published

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return Post{}, fmt.Errorf("content: render %s: %w", name, err)
	}
	p.HTML = strings.TrimSpace(bodyPolicy.Sanitize(buf.String()))

	return p, nil
}

// MetaTitle is the SEO title override or the post title
func (p Post) MetaTitle() string {
	if p.SEO.Title != "" {
		return p.SEO.Title
	}
	return p.Title
}

// MetaDescription is the SEO description override or the excerpt
func (p Post) MetaDescription() string {
	if p.SEO.Description != "" {
		return p.SEO.Description
	}
	return p.Excerpt
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}
