package guide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Remote model settings. These are fixed and not configurable at runtime.
const (
	ModelName     = "gemini-2.5-flash"
	Temperature   = 0.4
	RemoteTimeout = 20 * time.Second

	// MemoryWindow is the conversation size the prompt contract allows.
	// Every guide is a single-shot chat, so no history ever accumulates
	// and the window has no effect on requests.
	MemoryWindow = 8
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("gemini returned no content")

const systemInstruction = `Rôle : tu es un guide touristique francophone.

Exigence de sortie : réponds UNIQUEMENT en JSON valide, sans Markdown ni texte hors JSON,
en respectant EXACTEMENT ce schéma :
{
  "ville_ou_pays": "nom de la ville ou du pays",
  "endroits_a_visiter": ["endroit 1", "endroit 2"],
  "prix_moyen_repas": "<prix> <devise du pays>"
}

Règles :
- Si aucun nombre n'est fourni ou si la valeur <= 0, liste 2 lieux (les principaux).
- Utilise la devise officielle du pays concerné.
- Les intitulés doivent être concis.`

// userMessage renders the per-request prompt.
func userMessage(destination string, count int) string {
	return fmt.Sprintf(
		"Crée un mini-guide pour %s.\n"+
			"Donne %d lieux incontournables (ou 2 si la valeur n ≤ 0) et indique le prix moyen d'un repas\n"+
			"dans la devise locale.",
		destination, count,
	)
}

// GeminiGenerator asks a Gemini model for the guide.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator creates the genai client for apiKey and configures the model.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	return NewGeminiGeneratorWithOptions(ctx, apiKey)
}

// NewGeminiGeneratorWithOptions is NewGeminiGenerator with extra client
// options, such as a custom HTTP client (used in tests).
func NewGeminiGeneratorWithOptions(ctx context.Context, apiKey string, opts ...option.ClientOption) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	m := client.GenerativeModel(ModelName)
	m.SetTemperature(Temperature)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &GeminiGenerator{client: client, model: m}, nil
}

// GenerateGuide sends the templated prompt in a fresh chat session and
// returns the model's text unchanged.
func (g *GeminiGenerator) GenerateGuide(ctx context.Context, destination string, count int) (string, error) {
	cs := g.model.StartChat()
	resp, err := cs.SendMessage(ctx, genai.Text(userMessage(destination, count)))
	if err != nil {
		return "", fmt.Errorf("gemini generate for %s: %w", destination, err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini generate for %s: %w", destination, ErrEmptyResponse)
	}
	return text, nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
