// Package llm provides the Gemini-backed implementation of the optional
// free-form response generator.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/mkowalczyk/engagepilot/internal/generate"
)

// #region config

// GeminiConfig holds provider settings.
type GeminiConfig struct {
	APIKey string // empty = GOOGLE_API_KEY env var
	Model  string // e.g. "gemini-2.5-flash"
	Prompt string // optional system-style preamble prepended to the request
}

// #endregion config

// #region provider

// GeminiGenerator implements generate.TextGenerator using Google GenAI.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	prompt string
}

var _ generate.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates the provider. Fails when no API key is
// available; callers treat a missing provider as "template path only".
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiGenerator{client: client, model: model, prompt: cfg.Prompt}, nil
}

// #endregion provider

// #region generate

// Generate produces a short comment for the post. Errors surface to the
// caller, which falls back to template selection.
func (g *GeminiGenerator) Generate(ctx context.Context, req generate.Request) (string, error) {
	prompt := g.buildPrompt(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			out.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func (g *GeminiGenerator) buildPrompt(req generate.Request) string {
	var b strings.Builder
	if g.prompt != "" {
		b.WriteString(g.prompt)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Post category: %s\n", req.Category)
	if req.AuthorName != "" {
		fmt.Fprintf(&b, "Post author: %s\n", req.AuthorName)
	}
	fmt.Fprintf(&b, "Post text:\n%s\n", req.PostText)
	b.WriteString("\nWrite a single short, friendly comment responding to this post.")
	return b.String()
}

// #endregion generate
