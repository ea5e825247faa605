package http

import (
	"encoding/json"
	"time"

	"campus-advisor/internal/agent"
	"campus-advisor/internal/chat"
)

// --- Request DTOs ---

type askReq struct {
	Message   string `json:"message"    binding:"required,max=4000"`
	SessionID string `json:"session_id" binding:"max=128"`
}

func (r askReq) toInput(userID string) chat.AskInput {
	return chat.AskInput{UserID: userID, SessionID: r.SessionID, Message: r.Message}
}

type historyReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// --- Response DTOs ---

type askResp struct {
	Content            string         `json:"content"`
	Intent             string         `json:"intent"`
	HandlerName        string         `json:"handler_name"`
	Confidence         float64        `json:"confidence"`
	ToolsUsed          []string       `json:"tools_used"`
	ShowEmergencyPopup bool           `json:"show_emergency_popup"`
	CrisisDetected     bool           `json:"crisis_detected"`
	Metadata           agent.Metadata `json:"metadata"`
}

func newAskResp(out chat.AskOutput) askResp {
	tools := out.ToolsUsed
	if tools == nil {
		tools = []string{}
	}
	return askResp{
		Content:            out.Content,
		Intent:             out.Intent,
		HandlerName:        out.HandlerName,
		Confidence:         out.Confidence,
		ToolsUsed:          tools,
		ShowEmergencyPopup: out.ShowEmergencyPopup,
		CrisisDetected:     out.CrisisDetected,
		Metadata:           out.Metadata,
	}
}

type messageResp struct {
	ID          string          `json:"id"`
	SessionID   string          `json:"session_id,omitempty"`
	Role        string          `json:"role"`
	Content     string          `json:"content"`
	Intent      string          `json:"intent,omitempty"`
	HandlerName string          `json:"handler_name,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
}

func newHistoryResp(out chat.HistoryOutput) historyResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		var meta json.RawMessage
		if m.Metadata != "" && m.Metadata != "{}" && json.Valid([]byte(m.Metadata)) {
			meta = json.RawMessage(m.Metadata)
		}
		msgs[i] = messageResp{
			ID:          m.ID,
			SessionID:   m.SessionID,
			Role:        m.Role,
			Content:     m.Content,
			Intent:      m.Intent,
			HandlerName: m.HandlerName,
			Metadata:    meta,
			CreatedAt:   m.CreatedAt,
		}
	}
	return historyResp{Messages: msgs, Total: out.Total}
}

type stopResp struct {
	Message   string `json:"message"`
	Cancelled int    `json:"cancelled"`
}
