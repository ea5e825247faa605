package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"campus-advisor/internal/agent"
	"campus-advisor/internal/router"
)

// ProcessMessage never fails: any panic or handler error becomes the
// generic apology with confidence 0.
func (o *Orchestrator) ProcessMessage(ctx context.Context, in Input) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			o.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixProcessMessage, rec)
			res = apology(fmt.Errorf("panic: %v", rec))
		}
	}()

	decision := o.router.Route(ctx, in.Message)

	h, ok := o.handlers[decision.HandlerName]
	if !ok {
		o.l.Errorf(ctx, "%s: no handler registered for %q", LogPrefixProcessMessage, decision.HandlerName)
		return apology(fmt.Errorf("no handler %q", decision.HandlerName))
	}

	reply, err := h.Process(ctx, in.Message, in.Context)
	if err != nil {
		o.l.Errorf(ctx, "%s: handler %s failed: %v", LogPrefixProcessMessage, h.Name(), err)
		return apology(err)
	}

	if decision.Danger && !reply.Metadata.CrisisDetected {
		reply.Metadata.ShowEmergencyPopup = true
		if !slices.Contains(reply.ToolsUsed, agent.ToolDangerDetection) {
			reply.ToolsUsed = append(reply.ToolsUsed, agent.ToolDangerDetection)
		}
	}
	if reply.ToolsUsed == nil {
		reply.ToolsUsed = []string{}
	}

	o.l.Infof(ctx, "%s: intent=%s handler=%s source=%s confidence=%.2f",
		LogPrefixProcessMessage, decision.Intent, h.Name(), decision.Source, reply.Confidence)

	return Result{
		Reply:       reply,
		Intent:      decision.Intent,
		HandlerName: h.Name(),
		Decision:    decision,
	}
}

func apology(err error) Result {
	return Result{
		Reply: agent.Reply{
			Content:    ApologyText,
			Confidence: 0,
			ToolsUsed:  []string{},
			Metadata: agent.Metadata{
				AgentType: HandlerError,
				Error:     err.Error(),
			},
		},
		Intent:      router.IntentGeneral,
		HandlerName: HandlerError,
	}
}
