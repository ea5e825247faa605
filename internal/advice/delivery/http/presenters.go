package http

import (
	"encoding/json"
	"time"

	"campus-advisor/internal/advice"
)

type listReq struct {
	Category string `form:"category"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

func (r listReq) toInput(userID string) advice.ListInput {
	return advice.ListInput{UserID: userID, Category: r.Category, Limit: r.Limit}
}

type entryResp struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	AgentType string          `json:"agent_type"`
	Priority  string          `json:"priority"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type listResp struct {
	Advice []entryResp `json:"advice"`
	Total  int         `json:"total"`
}

func newListResp(out advice.ListOutput) listResp {
	items := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		var meta json.RawMessage
		if json.Valid([]byte(e.Metadata)) {
			meta = json.RawMessage(e.Metadata)
		}
		items[i] = entryResp{
			ID:        e.ID,
			Category:  e.Category,
			Title:     e.Title,
			Content:   e.Content,
			AgentType: e.AgentType,
			Priority:  e.Priority,
			Metadata:  meta,
			CreatedAt: e.CreatedAt,
		}
	}
	return listResp{Advice: items, Total: len(items)}
}
