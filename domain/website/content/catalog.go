package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// Service is a home page service card
type Service struct {
	Key  string `yaml:"key"`
	Icon string `yaml:"icon"`
}

// Project is a portfolio entry
type Project struct {
	Key   string   `yaml:"key"`
	URL   string   `yaml:"url"`
	Color string   `yaml:"color"`
	Tags  []string `yaml:"tags"`
}

// Partner is a logo wall entry
type Partner struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Photo is a gallery image
type Photo struct {
	Image string `yaml:"image"`
	Alt   string `yaml:"alt"`
}

// Catalog is the static home page content
type Catalog struct {
	Services  []Service `yaml:"services"`
	Projects  []Project `yaml:"projects"`
	Partners  []Partner `yaml:"partners"`
	Gallery   []Photo   `yaml:"gallery"`
	TechStack []string  `yaml:"techStack"`
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(siteYAML)
}

// ParseCatalog parses a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: parse catalog: %w", err)
	}
	for _, p := range c.Projects {
		if p.Key == "" || p.URL == "" {
			return nil, fmt.Errorf("content: project needs key and url")
		}
	}
	return &c, nil
}
