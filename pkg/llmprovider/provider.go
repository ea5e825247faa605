// Package llmprovider puts the advisor's text-generation backends (LM Studio,
// Ollama) behind one interface, with priority fallback between them.
package llmprovider

import "context"

// Provider is one text-generation backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Name is the provider kind from config, e.g. "local" or "ollama".
	Name() string
	Model() string
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request is a provider-neutral completion request.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

type Message struct {
	Role string
	Text string
}

// Response is a provider-neutral completion. Usage is nil when the backend
// does not report token counts.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (r *Response) inputTokens() int {
	if r.Usage == nil {
		return 0
	}
	return r.Usage.InputTokens
}

func (r *Response) outputTokens() int {
	if r.Usage == nil {
		return 0
	}
	return r.Usage.OutputTokens
}
