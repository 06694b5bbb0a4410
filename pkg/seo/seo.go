// Package seo computes the head metadata of a rendered page.
//
// Apply is pure: it compares a snapshot of the current head with the page
// metadata and returns the mutations that bring the head in line. Bindings
// (see package htmlhead) perform the mutations on a real document.
package seo

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultOGType      = "website"
	DefaultImage       = "/og-image.png"
	DefaultBaseURL     = "https://synctech.ao"
	DefaultBrandSuffix = "Synctech - Inovação e Tecnologia"
	titleSeparator     = " | "
)

var ErrInvalidMetadata = errors.New("invalid page metadata")

// PageMetadata describes one rendered page. Empty Keywords and CanonicalURL
// mean "not provided".
type PageMetadata struct {
	Title        string
	Description  string
	Keywords     string
	CanonicalURL string
	OGType       string
	ImageURL     string
}

// Validate checks the required fields.
func (m PageMetadata) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidMetadata)
	}
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidMetadata)
	}
	return nil
}

// Site holds the site-wide values shared by every page.
type Site struct {
	BaseURL      string
	BrandSuffix  string
	DefaultImage string
}

// Synchronizer turns page metadata into head mutations for one site.
type Synchronizer struct {
	baseURL      string
	brandSuffix  string
	defaultImage string
}

// New returns a Synchronizer, filling blank Site fields with defaults.
func New(site Site) *Synchronizer {
	if site.BaseURL == "" {
		site.BaseURL = DefaultBaseURL
	}
	if site.BrandSuffix == "" {
		site.BrandSuffix = DefaultBrandSuffix
	}
	if site.DefaultImage == "" {
		site.DefaultImage = DefaultImage
	}
	return &Synchronizer{
		baseURL:      strings.TrimRight(site.BaseURL, "/"),
		brandSuffix:  site.BrandSuffix,
		defaultImage: site.DefaultImage,
	}
}

// BaseURL returns the site base URL without a trailing slash.
func (s *Synchronizer) BaseURL() string { return s.baseURL }

// FullTitle appends the brand suffix.
func (s *Synchronizer) FullTitle(title string) string {
	return title + titleSeparator + s.brandSuffix
}

// AbsoluteImage resolves image against the base URL. Absolute and
// protocol-relative URLs are returned as they are, so the result is stable
// under repeated resolution. "///path" is a path, not a host.
func (s *Synchronizer) AbsoluteImage(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		image = s.defaultImage
	}
	if isAbsolute(image) {
		return image
	}
	return s.baseURL + "/" + strings.TrimLeft(image, "/")
}

func isAbsolute(u string) bool {
	lower := strings.ToLower(u)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		(strings.HasPrefix(lower, "//") && len(lower) > 2 && lower[2] != '/')
}

// Apply returns the mutations that make head reflect meta.
// pageURL is the address of the rendered page; blank falls back to the base URL.
func (s *Synchronizer) Apply(head Head, meta PageMetadata, pageURL string) []Mutation {
	title := s.FullTitle(meta.Title)
	image := s.AbsoluteImage(meta.ImageURL)
	ogType := meta.OGType
	if ogType == "" {
		ogType = DefaultOGType
	}
	if pageURL == "" {
		pageURL = s.baseURL
	}

	muts := make([]Mutation, 0, 13)
	muts = append(muts, Mutation{Op: OpSetTitle, Title: title})

	upsert := func(t Tag) {
		op := OpInsert
		if _, ok := head.Find(t); ok {
			op = OpUpdate
		}
		muts = append(muts, Mutation{Op: op, Tag: t})
	}

	upsert(NameTag("description", meta.Description))
	if meta.Keywords != "" {
		upsert(NameTag("keywords", meta.Keywords))
	}

	upsert(PropertyTag("og:title", title))
	upsert(PropertyTag("og:description", meta.Description))
	upsert(PropertyTag("og:image", image))
	upsert(PropertyTag("og:type", ogType))
	upsert(PropertyTag("og:url", pageURL))

	upsert(NameTag("twitter:title", title))
	upsert(NameTag("twitter:description", meta.Description))
	upsert(NameTag("twitter:image", image))
	upsert(NameTag("twitter:url", pageURL))

	if meta.CanonicalURL != "" {
		upsert(LinkTag("canonical", meta.CanonicalURL))
	}

	return muts
}
