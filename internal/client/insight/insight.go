// Package insight produces free-text operational insight from a generative
// model, together with any source links the model grounded its answer on.
package insight

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-3-flash-preview"

// EmptyText replaces a response that carried no text.
const EmptyText = "No insights could be generated at this time."

// entityNotFound is what the API reports for a key it does not recognise.
const entityNotFound = "Requested entity was not found"

// Link is a source reference returned alongside generated text.
type Link struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type Insight struct {
	Text  string `json:"text"`
	Links []Link `json:"links"`
}

// Generator turns a prompt into an Insight.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (Insight, error)
}

// Option adjusts a single request.
type Option func(*genai.GenerateContentConfig)

// WithSearchGrounding lets the model ground its answer on web search and
// report the pages it used as links.
func WithSearchGrounding() Option {
	return func(c *genai.GenerateContentConfig) {
		c.Tools = append(c.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
}

// modelsAPI is the part of *genai.Models the generator calls.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIGenerator calls the Gemini API. The client is created on first use so
// a console without an API key starts normally and only fails when asked
// for insight.
type GenAIGenerator struct {
	apiKey string
	model  string

	mu     sync.Mutex
	models modelsAPI

	// newModels is replaced in tests.
	newModels func(ctx context.Context, apiKey string) (modelsAPI, error)
}

func NewGenAIGenerator(apiKey, model string) *GenAIGenerator {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &GenAIGenerator{
		apiKey:    apiKey,
		model:     model,
		newModels: newGenAIModels,
	}
}

func newGenAIModels(ctx context.Context, apiKey string) (modelsAPI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

func (g *GenAIGenerator) client(ctx context.Context) (modelsAPI, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.models != nil {
		return g.models, nil
	}
	if strings.TrimSpace(g.apiKey) == "" {
		return nil, fmt.Errorf("no API key configured: %w: %w", common.ErrExternalService, common.ErrReconfigureCredentials)
	}

	m, err := g.newModels(ctx, g.apiKey)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w: %w", common.ErrExternalService, err)
	}
	g.models = m
	return m, nil
}

func (g *GenAIGenerator) Generate(ctx context.Context, prompt string, opts ...Option) (Insight, error) {
	m, err := g.client(ctx)
	if err != nil {
		return Insight{}, err
	}

	var cfg *genai.GenerateContentConfig
	if len(opts) > 0 {
		cfg = &genai.GenerateContentConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
	}

	resp, err := m.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return Insight{}, classify(err)
	}

	out := Insight{Text: responseText(resp), Links: groundingLinks(resp)}
	if strings.TrimSpace(out.Text) == "" {
		out.Text = EmptyText
	}
	return out, nil
}

func classify(err error) error {
	if strings.Contains(err.Error(), entityNotFound) {
		return fmt.Errorf("%w: %w: %w", common.ErrExternalService, common.ErrReconfigureCredentials, err)
	}
	return fmt.Errorf("%w: %w", common.ErrExternalService, err)
}

// responseText joins the text parts of the first candidate, skipping thoughts.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func groundingLinks(resp *genai.GenerateContentResponse) []Link {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var links []Link
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		links = append(links, Link{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return links
}
