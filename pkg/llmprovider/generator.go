package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"campus-advisor/pkg/log"
)

const (
	defaultClassifierInstruction = "You are a text classifier."
	classifyTemperature          = 0.3
	classifyMaxTokens            = 20
)

// ContentGenerator is satisfied by *Manager and by any single Provider.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Options tunes one Generate call.
type Options struct {
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
}

// Generator is the text-in/text-out facade used by the router and handlers.
type Generator struct {
	llm    ContentGenerator
	logger log.Logger
}

// NewGenerator wraps a ContentGenerator.
func NewGenerator(llm ContentGenerator, logger log.Logger) *Generator {
	return &Generator{llm: llm, logger: logger}
}

// Generate sends prompt as a single user message. A system prompt is
// prepended to the same message: small local models follow it more
// reliably there than in a separate system turn.
func (g *Generator) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	full := prompt
	if opts.SystemPrompt != "" {
		full = opts.SystemPrompt + "\n\n" + prompt
	}

	resp, err := g.llm.GenerateContent(ctx, &Request{
		Messages:    []Message{{Role: RoleUser, Text: full}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Classify asks the model to pick one of categories for text. The answer is
// matched by substring in list order; anything unrecognised, and any
// error, yields the last category.
func (g *Generator) Classify(ctx context.Context, text string, categories []string, instruction string) string {
	if len(categories) == 0 {
		return ""
	}
	fallback := categories[len(categories)-1]

	if instruction == "" {
		instruction = defaultClassifierInstruction
	}

	prompt := fmt.Sprintf("Classify the following text into ONLY ONE of these categories: %s\n\nText: \"%s\"\n\nReply with ONLY the category name, nothing else.",
		strings.Join(categories, ", "), text)

	out, err := g.Generate(ctx, prompt, Options{
		Temperature:  classifyTemperature,
		MaxTokens:    classifyMaxTokens,
		SystemPrompt: instruction,
	})
	if err != nil {
		g.logger.Warnf(ctx, "llmprovider.Generator.Classify: generation failed, using %q: %v", fallback, err)
		return fallback
	}

	return MatchCategory(out, categories)
}

// MatchCategory returns the first category contained in the lower-cased
// answer, or the last category when none is.
func MatchCategory(answer string, categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(answer))
	for _, c := range categories {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c
		}
	}
	return categories[len(categories)-1]
}
