package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFence(tc.input))
		})
	}
}

func TestRepairJSONFixesTrailingComma(t *testing.T) {
	repaired, err := RepairJSON(`{"scores": [1, 2, 3,],}`)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &doc))
	assert.Len(t, doc["scores"], 3)
}

func TestCleanMarkdownStripsWrapper(t *testing.T) {
	input := "```markdown\n# Analysis\n\nStrong cash generation.\n```"
	got := CleanMarkdown(input)
	assert.Equal(t, "# Analysis\n\nStrong cash generation.", got)
	assert.True(t, ValidateMarkdown(got))
}
