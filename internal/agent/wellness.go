package agent

import (
	"context"

	"campus-advisor/internal/router"
	"campus-advisor/internal/safety"
	"campus-advisor/pkg/log"
)

// WellnessHandler serves emotional support and every crisis message.
type WellnessHandler struct {
	domainHandler
}

// NewWellnessHandler creates the wellness handler.
func NewWellnessHandler(llm Generator, cfg Config, l log.Logger) *WellnessHandler {
	return &WellnessHandler{domainHandler{
		name:        router.HandlerWellness,
		intent:      router.IntentWellness,
		persona:     PersonaWellness,
		confidence:  ConfidenceWellness,
		agentType:   AgentTypeWellness,
		supportType: SupportEmotional,
		llm:         llm,
		cfg:         cfg.withDefaults(),
		l:           l,
	}}
}

// Process re-checks for crisis before anything else, then flags danger and
// estimates stress before the single generation call.
func (h *WellnessHandler) Process(ctx context.Context, message string, c Context) (Reply, error) {
	if safety.DetectCrisis(message) {
		h.l.Warnf(ctx, "%s: crisis detected, serving crisis resources", LogPrefixWellnessProcess)
		name := ""
		if c.Profile != nil {
			name = c.Profile.Name
		}
		return CrisisReply(name), nil
	}

	tools := []string{}
	meta := Metadata{AgentType: h.agentType, SupportType: h.supportType}

	if safety.DetectPotentialDanger(message) {
		tools = append(tools, ToolDangerDetection)
		meta.ShowEmergencyPopup = true
	}

	if level, ok := safety.DetectStressLevel(message); ok {
		meta.DetectedStressLevel = &level
		tools = append(tools, ToolStressDetection)
	}

	content, degraded := h.generate(ctx, message, c)
	reply := Reply{
		Content:    content,
		Confidence: h.confidence,
		ToolsUsed:  tools,
		Metadata:   meta,
	}
	if degraded {
		reply.Confidence = ConfidenceDegraded
		reply.Metadata.Degraded = true
	}
	return reply, nil
}
