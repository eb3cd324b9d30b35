// Package gemini implements ports.Assistant on the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// SystemPrompt frames every question sent to the model.
const SystemPrompt = `You are an expert Algorithm Learning Assistant. Answer questions about sorting algorithms, search algorithms, time complexity, space complexity, and algorithm design. Keep responses concise and educational.

Available algorithms in the visualizer:
- Sorting: Bubble Sort, Quick Sort, Merge Sort, Insertion Sort, Selection Sort
- Searching: Linear Search, Binary Search

Provide accurate technical explanations and help users understand algorithm concepts.`

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("empty response from model")

// contentGenerator is the subset of *genai.Models the assistant needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant answers questions with a Gemini model.
type Assistant struct {
	models contentGenerator
	model  string
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(a *Assistant) {
		if model != "" {
			a.model = model
		}
	}
}

// New creates an assistant backed by the Gemini API.
func New(ctx context.Context, apiKey string, opts ...Option) (*Assistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newAssistant(client.Models, opts...), nil
}

func newAssistant(models contentGenerator, opts ...Option) *Assistant {
	a := &Assistant{
		models: models,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model returns the configured model name.
func (a *Assistant) Model() string {
	return a.model
}

// Ask sends the question, prefixed with the algorithm being viewed when known.
func (a *Assistant) Ask(ctx context.Context, query, algorithmContext string) (string, error) {
	resp, err := a.models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(Prompt(query, algorithmContext), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Prompt renders the user turn sent to the model.
func Prompt(query, algorithmContext string) string {
	if algorithmContext == "" {
		return query
	}
	return fmt.Sprintf("Context: Currently viewing %s algorithm.\n\nQuestion: %s", algorithmContext, query)
}
