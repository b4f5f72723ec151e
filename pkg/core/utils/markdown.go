package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown strips conversational filler and outer code fences from
// model-written analysis text so the UI renders pure Markdown.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)
	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = StripCodeFence(cleaned)
	}
	return cleaned
}

// ValidateMarkdown reports whether the string parses as Markdown. Goldmark
// is permissive, so this only catches grossly broken output.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}
