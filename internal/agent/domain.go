package agent

import (
	"context"

	"campus-advisor/internal/router"
	"campus-advisor/pkg/llmprovider"
	"campus-advisor/pkg/log"
)

// domainHandler is the shared shape of the academic and campus-life
// handlers: persona, one generation call, fixed confidence.
type domainHandler struct {
	name        string
	intent      router.Intent
	persona     string
	confidence  float64
	agentType   string
	supportType string

	llm Generator
	cfg Config
	l   log.Logger
}

// NewAcademicHandler creates the study-support handler.
func NewAcademicHandler(llm Generator, cfg Config, l log.Logger) Handler {
	return &domainHandler{
		name:        router.HandlerAcademic,
		intent:      router.IntentAcademic,
		persona:     PersonaAcademic,
		confidence:  ConfidenceAcademic,
		agentType:   AgentTypeAcademic,
		supportType: SupportStudy,
		llm:         llm,
		cfg:         cfg.withDefaults(),
		l:           l,
	}
}

// NewCampusLifeHandler creates the clubs/housing/resources handler.
func NewCampusLifeHandler(llm Generator, cfg Config, l log.Logger) Handler {
	return &domainHandler{
		name:        router.HandlerCampusLife,
		intent:      router.IntentCampusLife,
		persona:     PersonaCampusLife,
		confidence:  ConfidenceCampusLife,
		agentType:   AgentTypeCampusLife,
		supportType: SupportSocial,
		llm:         llm,
		cfg:         cfg.withDefaults(),
		l:           l,
	}
}

func (h *domainHandler) Name() string { return h.name }
func (h *domainHandler) Intent() router.Intent { return h.intent }

func (h *domainHandler) CanHandle(message string) bool {
	return router.MatchesKeywords(h.intent, message)
}

func (h *domainHandler) Process(ctx context.Context, message string, c Context) (Reply, error) {
	meta := Metadata{AgentType: h.agentType, SupportType: h.supportType}
	content, degraded := h.generate(ctx, message, c)

	reply := Reply{
		Content:    content,
		Confidence: h.confidence,
		ToolsUsed:  []string{},
		Metadata:   meta,
	}
	if degraded {
		reply.Confidence = ConfidenceDegraded
		reply.Metadata.Degraded = true
	}
	return reply, nil
}

// generate runs the single generation call. On failure it returns the
// canned keyword answer and degraded=true.
func (h *domainHandler) generate(ctx context.Context, message string, c Context) (string, bool) {
	prompt := buildPrompt(message, c, domainStyle(h.cfg.PromptTurns))
	out, err := h.llm.Generate(ctx, prompt, llmprovider.Options{
		Temperature:  h.cfg.Temperature,
		MaxTokens:    h.cfg.MaxTokens,
		SystemPrompt: h.persona,
	})
	if err != nil {
		h.l.Warnf(ctx, "%s: %s generation failed, serving canned reply: %v", LogPrefixDomainProcess, h.name, err)
		return FallbackText(message), true
	}
	return out, false
}
