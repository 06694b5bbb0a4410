package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed posts/*.md
var postsFS embed.FS

// Store is the immutable, date-sorted set of blog posts
type Store struct {
	posts  []Post
	bySlug map[string]int
}

// LoadStore reads posts from dir, or the embedded posts when dir is empty
func LoadStore(dir string) (*Store, error) {
	if dir == "" {
		sub, err := fs.Sub(postsFS, "posts")
		if err != nil {
			return nil, err
		}
		return NewStore(sub)
	}
	return NewStore(os.DirFS(dir))
}

// NewStore parses every *.md file at the root of fsys.
// Any invalid post fails the whole load.
func NewStore(fsys fs.FS) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("content: read posts: %w", err)
	}

	s := &Store{bySlug: map[string]int{}}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", e.Name(), err)
		}
		p, err := ParsePost(e.Name(), data)
		if err != nil {
			return nil, err
		}
		if _, dup := s.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate slug %q", p.Slug)
		}
		s.bySlug[p.Slug] = -1
		s.posts = append(s.posts, p)
	}

	sort.SliceStable(s.posts, func(i, j int) bool {
		if s.posts[i].PublishedAt.Equal(s.posts[j].PublishedAt) {
			return s.posts[i].Slug < s.posts[j].Slug
		}
		return s.posts[i].PublishedAt.After(s.posts[j].PublishedAt)
	})
	for i, p := range s.posts {
		s.bySlug[p.Slug] = i
	}
	return s, nil
}

// All returns every post, newest first
func (s *Store) All() []Post {
	return append([]Post(nil), s.posts...)
}

// Get returns the post with slug
func (s *Store) Get(slug string) (Post, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return s.posts[i], true
}

// Featured returns the first featured post, or the newest one
func (s *Store) Featured() (Post, bool) {
	for _, p := range s.posts {
		if p.Featured {
			return p, true
		}
	}
	if len(s.posts) == 0 {
		return Post{}, false
	}
	return s.posts[0], true
}

// Categories returns the distinct categories in post order
func (s *Store) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.posts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// ByCategory returns the posts of category; an empty category matches all.
// Matching is case-insensitive.
func (s *Store) ByCategory(category string) []Post {
	if category == "" {
		return s.All()
	}
	var out []Post
	for _, p := range s.posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to n other posts, same category first
func (s *Store) Related(slug string, n int) []Post {
	cur, ok := s.Get(slug)
	if !ok || n <= 0 {
		return nil
	}
	var same, other []Post
	for _, p := range s.posts {
		if p.Slug == slug {
			continue
		}
		if p.Category == cur.Category {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}
	out := append(same, other...)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Latest returns the n newest posts
func (s *Store) Latest(n int) []Post {
	if n > len(s.posts) {
		n = len(s.posts)
	}
	return append([]Post(nil), s.posts[:n]...)
}
