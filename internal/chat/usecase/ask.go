package usecase

import (
	"context"
	"strings"

	"campus-advisor/internal/agent"
	"campus-advisor/internal/agent/orchestrator"
	"campus-advisor/internal/chat"
	"campus-advisor/internal/safety"
)

// Ask runs one message through routing and a handler, then persists the
// exchange. Only input validation can fail.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	if input.UserID == "" {
		return chat.AskOutput{}, chat.ErrMissingUser
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.AskOutput{}, chat.ErrEmptyMessage
	}

	genCtx, cancel := context.WithCancel(ctx)
	token := uc.inflight.add(input.UserID, cancel)
	defer func() {
		uc.inflight.done(input.UserID, token)
		cancel()
	}()

	// A crisis reply must not wait on the history cache, which may be
	// remote. Only the profile name is looked up for it.
	var turnCtx agent.Context
	if safety.DetectCrisis(message) {
		turnCtx = uc.crisisContext(ctx, input.UserID)
	} else {
		turnCtx = uc.BuildContext(ctx, input.UserID)
	}

	res := uc.proc.ProcessMessage(genCtx, orchestrator.Input{
		UserID:    input.UserID,
		SessionID: input.SessionID,
		Message:   message,
		Context:   turnCtx,
	})

	// A stop request must not prevent the turn from being recorded.
	res.Reply.ToolsUsed = uc.afterReply(context.WithoutCancel(ctx), input.UserID, input.SessionID, message, res)

	uc.l.Infof(ctx, "%s: user=%s intent=%s handler=%s", chat.LogPrefixAsk, input.UserID, res.Intent, res.HandlerName)

	return chat.AskOutput{
		Content:            res.Reply.Content,
		Intent:             string(res.Intent),
		HandlerName:        res.HandlerName,
		Confidence:         res.Reply.Confidence,
		ToolsUsed:          res.Reply.ToolsUsed,
		ShowEmergencyPopup: res.Reply.Metadata.ShowEmergencyPopup,
		CrisisDetected:     res.Reply.Metadata.CrisisDetected,
		Metadata:           res.Reply.Metadata,
	}, nil
}
