package nats

import "campus-advisor/internal/chat"

// askRequest is the payload published on the ask subject.
type askRequest struct {
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// askReply mirrors the HTTP ask response, plus an error field.
type askReply struct {
	Content            string   `json:"content,omitempty"`
	Intent             string   `json:"intent,omitempty"`
	HandlerName        string   `json:"handler_name,omitempty"`
	Confidence         float64  `json:"confidence"`
	ToolsUsed          []string `json:"tools_used"`
	ShowEmergencyPopup bool     `json:"show_emergency_popup"`
	CrisisDetected     bool     `json:"crisis_detected"`
	Error              string   `json:"error,omitempty"`
}

func newAskReply(out chat.AskOutput) askReply {
	tools := out.ToolsUsed
	if tools == nil {
		tools = []string{}
	}
	return askReply{
		Content:            out.Content,
		Intent:             out.Intent,
		HandlerName:        out.HandlerName,
		Confidence:         out.Confidence,
		ToolsUsed:          tools,
		ShowEmergencyPopup: out.ShowEmergencyPopup,
		CrisisDetected:     out.CrisisDetected,
	}
}
