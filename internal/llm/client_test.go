package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestResponseText_NoCandidates(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestResponseText_EmptyCandidate(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	_, err := responseText(resp)
	require.Error(t, err)
}

func TestResponseText_JoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text(`{"match_`), genai.Text(`score": 82}`)},
			},
		}},
	}

	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"match_score": 82}`, text)
}
