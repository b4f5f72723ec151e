// Package utils holds small text-processing helpers for LLM output: code
// fence stripping, JSON repair, and markdown cleanup.
package utils

import (
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// StripCodeFence removes a wrapping markdown code fence (```json ... ``` or
// plain ```) from an LLM response, returning the inner payload trimmed.
func StripCodeFence(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	// The fence may carry a language tag on the same line.
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(cleaned[:idx])
		if firstLine == "" || isFenceTag(firstLine) {
			cleaned = cleaned[idx+1:]
		}
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

func isFenceTag(s string) bool {
	switch strings.ToLower(s) {
	case "json", "markdown", "text":
		return true
	}
	return false
}

// RepairJSON fixes common JSON defects in LLM output: single quotes,
// unquoted keys, trailing commas, unclosed brackets, embedded comments.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}
