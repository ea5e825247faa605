package agent

import (
	"context"

	"campus-advisor/internal/router"
	"campus-advisor/pkg/llmprovider"
	"campus-advisor/pkg/log"
)

// GeneralHandler answers whatever no domain handler claims.
type GeneralHandler struct {
	llm Generator
	cfg Config
	l   log.Logger
}

// NewGeneralHandler creates the catch-all handler.
func NewGeneralHandler(llm Generator, cfg Config, l log.Logger) *GeneralHandler {
	return &GeneralHandler{llm: llm, cfg: cfg.withDefaults(), l: l}
}

func (h *GeneralHandler) Name() string { return router.HandlerGeneral }
func (h *GeneralHandler) Intent() router.Intent { return router.IntentGeneral }

// CanHandle is always true: general is the last resort.
func (h *GeneralHandler) CanHandle(string) bool { return true }

func (h *GeneralHandler) Process(ctx context.Context, message string, c Context) (Reply, error) {
	meta := Metadata{AgentType: AgentTypeGeneral}

	prompt := buildPrompt(message, c, generalStyle(h.cfg.GeneralPromptTurns))
	out, err := h.llm.Generate(ctx, prompt, llmprovider.Options{
		Temperature:  h.cfg.Temperature,
		MaxTokens:    h.cfg.GeneralMaxTokens,
		SystemPrompt: PersonaGeneral,
	})
	if err == nil {
		return Reply{Content: out, Confidence: ConfidenceGeneral, ToolsUsed: []string{}, Metadata: meta}, nil
	}

	h.l.Warnf(ctx, "%s: generation failed, serving canned reply: %v", LogPrefixGeneralProcess, err)
	name := ""
	if c.Profile != nil {
		name = c.Profile.Name
	}
	return Reply{
		Content:    CannedGeneral(message, name),
		Confidence: ConfidenceCanned,
		ToolsUsed:  []string{},
		Metadata:   meta,
	}, nil
}
