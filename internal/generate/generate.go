// Package generate asks a chat model for question/answer/citation triples
// over a parsed document and validates every returned citation against the
// document text.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/citeset/internal/budget"
	"github.com/hyperifyio/citeset/internal/cache"
	"github.com/hyperifyio/citeset/internal/llm"
	"github.com/hyperifyio/citeset/internal/triple"
)

// Generator calls the LLM to produce triples for one document.
type Generator struct {
	Client      llm.Client
	Cache       *cache.LLMCache
	Model       string
	Temperature float32
	MinTriples  int
	MaxTriples  int
	// Language hints the output language for questions and answers,
	// e.g. "en" or "fi". Empty lets the model follow the document.
	Language string
	// SystemPrompt, when non-empty, overrides the default system message.
	SystemPrompt string
}

// ErrNotConfigured reports a generator without a usable client or model.
var ErrNotConfigured = errors.New("generator not configured")

// ErrPromptTooLarge reports a document whose prompt cannot fit the model's
// context window even after token budgeting.
var ErrPromptTooLarge = errors.New("prompt exceeds model context")

// Generate requests triples for the document content and returns them with
// CitationValid derived by matching each citation against the text.
// Responses are cached by model+prompt digest so re-runs are free and
// deterministic.
func (g *Generator) Generate(ctx context.Context, content string) ([]triple.Triple, error) {
	if g.Client == nil || strings.TrimSpace(g.Model) == "" {
		return nil, ErrNotConfigured
	}
	system := defaultSystemPrompt
	if strings.TrimSpace(g.SystemPrompt) != "" {
		system = g.SystemPrompt
	}
	user := g.buildUserPrompt(content)

	if !budget.FitsInContext(g.Model, reservedOutputTokens, budget.EstimateTokens(system)+budget.EstimateTokens(user)) {
		return nil, fmt.Errorf("%w: model %s", ErrPromptTooLarge, g.Model)
	}

	raw, err := g.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	triples, err := parseResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}
	for i := range triples {
		triples[i].CitationValid = ValidateCitation(triples[i].Citation, content)
	}
	return triples, nil
}

// complete runs the chat call with a cache in front of it.
func (g *Generator) complete(ctx context.Context, system, user string) (string, error) {
	var key string
	if g.Cache != nil {
		key = cache.KeyFrom(g.Model, system+"\n\n"+user)
		if b, ok, _ := g.Cache.Get(ctx, key); ok {
			return string(b), nil
		}
	}
	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: g.Temperature,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if g.Cache != nil {
		_ = g.Cache.Save(ctx, key, []byte(raw))
	}
	return raw, nil
}

// reservedOutputTokens leaves room for the model's JSON reply.
const reservedOutputTokens = 4096

const defaultSystemPrompt = "You are a helpful assistant that generates training data for RAG systems. You always respond with valid JSON."

func (g *Generator) buildUserPrompt(content string) string {
	min, max := g.MinTriples, g.MaxTriples
	if max <= 0 {
		max = 10
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You are tasked with generating question-answer-citation triples from a document for RAG evaluation.\n\n")
	fmt.Fprintf(&b, "Generate between %d and %d question/answer/citation triples based on the content below. The questions should be natural questions that a naive user (someone unfamiliar with the topic) might ask.\n\n", min, max)
	b.WriteString(`IMPORTANT RULES:
1. Questions should be clear and specific
2. Answers should be accurate and based solely on the document
3. Citations MUST be EXACT text snippets from the document (word-for-word, no paraphrasing, same formatting)
4. Each citation should be a continuous passage from the document
5. The citation should support the answer directly
6. Generate only as many triples as make sense for the document
7. For short documents with limited content, generate fewer triples
8. Questions should vary in complexity and topic

Return your response as a JSON array with this exact structure:
[
  {
    "question": "What is...?",
    "answer": "The answer based on the document...",
    "citation": "Exact text snippet from the document that supports this answer"
  }
]

DOCUMENT:
`)
	b.WriteString(content)
	if lang := strings.TrimSpace(g.Language); lang != "" {
		fmt.Fprintf(&b, "\n\nWrite the questions and answers in this language: %s. Citations stay verbatim in the document's language.", lang)
	}
	b.WriteString("\n\nGenerate the Q/A/Citation triples in JSON format:")
	return b.String()
}
