package chat

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/raymond"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// LanguageText holds the per-language strings of a prompt set
type LanguageText struct {
	// Name is substituted for {{language}} in the system template
	Name            string `yaml:"name"`
	NotConfigured   string `yaml:"not_configured"`
	MessageRequired string `yaml:"message_required"`
	InvalidBody     string `yaml:"invalid_body"`
}

type promptFile struct {
	System    string                  `yaml:"system"`
	User      string                  `yaml:"user"`
	Failure   string                  `yaml:"failure"`
	Languages map[string]LanguageText `yaml:"languages"`
}

// Prompts is the parsed prompt set. It is read-only after parsing and safe
// for concurrent use.
type Prompts struct {
	system    *raymond.Template
	user      *raymond.Template
	failure   string
	languages map[Language]LanguageText
}

// DefaultPrompts parses the embedded prompt set
func DefaultPrompts() (*Prompts, error) {
	return ParsePrompts(defaultPrompts)
}

// LoadPrompts reads a prompt set from path, or the embedded one when path is empty
func LoadPrompts(path string) (*Prompts, error) {
	if path == "" {
		return DefaultPrompts()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts %s: %w", path, err)
	}
	p, err := ParsePrompts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParsePrompts parses and validates a YAML prompt set. Both English and
// Portuguese entries are required.
func ParsePrompts(data []byte) (*Prompts, error) {
	var f promptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse prompts: %w", err)
	}
	if strings.TrimSpace(f.System) == "" {
		return nil, fmt.Errorf("prompts: system template is empty")
	}
	if strings.TrimSpace(f.User) == "" {
		return nil, fmt.Errorf("prompts: user template is empty")
	}
	if f.Failure == "" {
		return nil, fmt.Errorf("prompts: failure message is empty")
	}

	system, err := raymond.Parse(f.System)
	if err != nil {
		return nil, fmt.Errorf("prompts: system template: %w", err)
	}
	user, err := raymond.Parse(f.User)
	if err != nil {
		return nil, fmt.Errorf("prompts: user template: %w", err)
	}

	p := &Prompts{
		system:    system,
		user:      user,
		failure:   f.Failure,
		languages: make(map[Language]LanguageText, len(f.Languages)),
	}
	for _, lang := range []Language{English, Portuguese} {
		text, ok := f.Languages[string(lang)]
		if !ok {
			return nil, fmt.Errorf("prompts: missing language %q", lang)
		}
		if text.Name == "" || text.NotConfigured == "" || text.MessageRequired == "" {
			return nil, fmt.Errorf("prompts: incomplete language %q", lang)
		}
		if text.InvalidBody == "" {
			text.InvalidBody = text.MessageRequired
		}
		p.languages[lang] = text
	}
	return p, nil
}

// System renders the system instruction for lang
func (p *Prompts) System(lang Language) (string, error) {
	return p.system.Exec(map[string]any{
		"language": p.text(lang).Name,
	})
}

// User renders the user turn around the raw message
func (p *Prompts) User(message string) (string, error) {
	return p.user.Exec(map[string]any{
		"message": message,
	})
}

// NotConfigured returns the localized missing-credential message
func (p *Prompts) NotConfigured(lang Language) string { return p.text(lang).NotConfigured }

// MessageRequired returns the localized empty-message error
func (p *Prompts) MessageRequired(lang Language) string { return p.text(lang).MessageRequired }

// InvalidBody returns the localized unparsable-body error
func (p *Prompts) InvalidBody(lang Language) string { return p.text(lang).InvalidBody }

// Failure returns the generic downstream failure message
func (p *Prompts) Failure() string { return p.failure }

func (p *Prompts) text(lang Language) LanguageText {
	if t, ok := p.languages[lang]; ok {
		return t
	}
	return p.languages[Portuguese]
}
