package guide

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiGenerator_BlankKey(t *testing.T) {
	g, err := NewGeminiGenerator(context.Background(), "   ")
	require.Error(t, err)
	assert.Nil(t, g)
}

func TestUserMessage(t *testing.T) {
	msg := userMessage("Marrakech", 4)
	assert.Contains(t, msg, "Crée un mini-guide pour Marrakech.")
	assert.Contains(t, msg, "Donne 4 lieux incontournables")
	assert.Contains(t, msg, "devise locale")
}

func TestSystemInstruction_DescribesSchema(t *testing.T) {
	for _, key := range []string{"ville_ou_pays", "endroits_a_visiter", "prix_moyen_repas"} {
		assert.Contains(t, systemInstruction, key)
	}
	assert.Contains(t, systemInstruction, "liste 2 lieux")
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	assert.Equal(t, `{"a":1}`, responseText(resp))
}

func TestResponseText_Empty(t *testing.T) {
	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
}
