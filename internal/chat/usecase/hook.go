package usecase

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"campus-advisor/internal/advice"
	"campus-advisor/internal/agent"
	"campus-advisor/internal/agent/orchestrator"
	"campus-advisor/internal/chat"
	repo "campus-advisor/internal/chat/repository"
)

// afterReply persists the user turn, the assistant turn, an advice entry when
// the reply qualifies, and any detected stress level, in that order. Every
// failure is logged and swallowed. It returns the reply's tool tags, extended
// with stress-tracking when the profile was updated.
func (uc *implUseCase) afterReply(ctx context.Context, userID, sessionID, message string, res orchestrator.Result) []string {
	tools := res.Reply.ToolsUsed
	if tools == nil {
		tools = []string{}
	}
	defer func() {
		if uc.cache != nil {
			uc.cache.Invalidate(ctx, userID)
		}
	}()

	meta, err := json.Marshal(res.Reply.Metadata)
	if err != nil {
		uc.l.Errorf(ctx, "%s: encode metadata: %v", chat.LogPrefixAfterTurn, err)
		meta = []byte("{}")
	}

	if _, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		UserID:    userID,
		SessionID: sessionID,
		Role:      agent.RoleUser,
		Content:   message,
		Intent:    string(res.Intent),
	}); err != nil {
		uc.l.Errorf(ctx, "%s: save user turn: %v", chat.LogPrefixAfterTurn, err)
	}

	if _, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		UserID:      userID,
		SessionID:   sessionID,
		Role:        agent.RoleAssistant,
		Content:     res.Reply.Content,
		Intent:      string(res.Intent),
		HandlerName: res.HandlerName,
		Metadata:    string(meta),
	}); err != nil {
		uc.l.Errorf(ctx, "%s: save assistant turn: %v", chat.LogPrefixAfterTurn, err)
	}

	intent := string(res.Intent)
	if uc.advice != nil && advice.ShouldLog(intent, res.Reply.Confidence, uc.cfg.AdviceThreshold) {
		if _, err := uc.advice.Log(ctx, advice.LogInput{
			UserID:    userID,
			Category:  advice.CategoryFor(intent, res.Reply.Metadata.SupportType),
			Title:     advice.TitleFor(intent, time.Now()),
			Content:   res.Reply.Content,
			AgentType: res.Reply.Metadata.AgentType,
			Priority:  advice.PriorityFor(res.Reply.Confidence, res.Reply.Metadata.CrisisDetected),
			Metadata:  string(meta),
		}); err != nil {
			uc.l.Errorf(ctx, "%s: save advice: %v", chat.LogPrefixAfterTurn, err)
		}
	}

	if level := res.Reply.Metadata.DetectedStressLevel; level != nil && uc.profiles != nil {
		if err := uc.profiles.UpdateStressLevel(ctx, userID, *level); err != nil {
			uc.l.Warnf(ctx, "%s: update stress level: %v", chat.LogPrefixAfterTurn, err)
		} else if !slices.Contains(tools, agent.ToolStressTracking) {
			tools = append(slices.Clone(tools), agent.ToolStressTracking)
		}
	}

	return tools
}
