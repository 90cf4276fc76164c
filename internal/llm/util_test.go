package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fitPayload = `{"skill_match": {"matched": ["react", "sql"], "transferable": ["vue"], "match_score": 82}}`

func TestCleanJSONBlock_Fences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare payload", fitPayload},
		{"json fence", "```json\n" + fitPayload + "\n```"},
		{"plain fence", "```\n" + fitPayload + "\n```"},
		{"fence with language tag", "```javascript\n" + fitPayload + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, fitPayload, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_SurroundingProse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before object",
			input:    "Here is the structured fit analysis:\n\n" + fitPayload,
			expected: fitPayload,
		},
		{
			name:     "trailing chatter",
			input:    fitPayload + "\n\nLet me know if you need anything else!",
			expected: fitPayload,
		},
		{
			name:     "preamble before array",
			input:    "The transferable skills are:\n[\"vue\", \"svelte\"]",
			expected: `["vue", "svelte"]`,
		},
		{
			name:     "braces inside string values",
			input:    `Result: {"explanation": "clears the {5+ years} bar"}`,
			expected: `{"explanation": "clears the {5+ years} bar"}`,
		},
		{
			name:     "escaped quotes inside values",
			input:    `Output: {"explanation": "resume lists \"SQL\" explicitly"}`,
			expected: `{"explanation": "resume lists \"SQL\" explicitly"}`,
		},
		{
			name:     "nested objects",
			input:    "Analysis:\n" + `{"experience_match": {"score": 100, "explanation": "meets"}}`,
			expected: `{"experience_match": {"score": 100, "explanation": "meets"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_NoJSON(t *testing.T) {
	// Nothing extractable: pass the response through for the caller's
	// unmarshal error to report.
	assert.Equal(t, "the model declined to answer", CleanJSONBlock("the model declined to answer"))
	assert.Equal(t, "", CleanJSONBlock("   "))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"score": 74}`, extractJSONObject(`{"score": 74} trailing`))
	assert.Equal(t, "", extractJSONObject(`not an object`))
	assert.Equal(t, "", extractJSONObject(`{"unbalanced": `))
	assert.Equal(t, "", extractJSONObject(""))
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[{"id": 1}, {"id": 2}]`, extractJSONArray(`[{"id": 1}, {"id": 2}] extra`))
	assert.Equal(t, "", extractJSONArray(`not an array`))
	assert.Equal(t, "", extractJSONArray(`["unbalanced"`))
}
