package chat

import "strings"

// Request is the body of POST /api/chat
type Request struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

// Response is the success body of POST /api/chat
type Response struct {
	Content string `json:"content"`
}

// Language selects the system prompt variant and the reply language
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// ParseLanguage maps a request language code to a Language.
// Only "en" selects English; every other value falls back to Portuguese.
// The code is trimmed and matched case-insensitively, so "EN" and " en"
// also select English.
func ParseLanguage(code string) Language {
	if strings.EqualFold(strings.TrimSpace(code), string(English)) {
		return English
	}
	return Portuguese
}
