package llmprovider

import (
	"context"
	"strings"

	"campus-advisor/pkg/localllm"

	"github.com/tmc/langchaingo/llms"
)

const (
	ProviderLocal  = "local"
	ProviderOllama = "ollama"
)

// LocalAdapter adapts pkg/localllm to the Provider interface.
type LocalAdapter struct {
	client localllm.IClient
}

// NewLocalAdapter creates a new LM Studio style adapter
func NewLocalAdapter(client localllm.IClient) *LocalAdapter {
	return &LocalAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *LocalAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]localllm.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil && req.SystemInstruction.Text != "" {
		msgs = append(msgs, localllm.Message{Role: RoleSystem, Content: req.SystemInstruction.Text})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, localllm.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.Complete(ctx, &localllm.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: ProviderLocal, Err: err}
	}

	return &Response{
		Text:         resp.Content,
		ProviderName: ProviderLocal,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *LocalAdapter) Name() string {
	return ProviderLocal
}

// Model returns model name
func (a *LocalAdapter) Model() string {
	return a.client.Model()
}

// contentModel is the slice of llms.Model the adapter needs.
type contentModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// OllamaAdapter adapts a langchaingo model (normally llms/ollama) to the
// Provider interface.
type OllamaAdapter struct {
	llm   contentModel
	model string
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(llm contentModel, model string) *OllamaAdapter {
	return &OllamaAdapter{llm: llm, model: model}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	content := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil && req.SystemInstruction.Text != "" {
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, req.SystemInstruction.Text))
	}
	for _, m := range req.Messages {
		content = append(content, llms.TextParts(toChatMessageType(m.Role), m.Text))
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := a.llm.GenerateContent(ctx, content, opts...)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderOllama, Err: err}
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: ProviderOllama, Err: ErrEmptyResponse}
	}

	choice := resp.Choices[0]
	return &Response{
		Text:         strings.TrimSpace(choice.Content),
		ProviderName: ProviderOllama,
		ModelName:    a.model,
		Usage:        usageFromGenerationInfo(choice.GenerationInfo),
	}, nil
}

// Name returns the provider name
func (a *OllamaAdapter) Name() string {
	return ProviderOllama
}

// Model returns the model name
func (a *OllamaAdapter) Model() string {
	return a.model
}

func toChatMessageType(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// usageFromGenerationInfo reads the token counters ollama reports.
func usageFromGenerationInfo(info map[string]any) *Usage {
	u := &Usage{}
	if v, ok := info["PromptTokens"].(int); ok {
		u.InputTokens = v
	}
	if v, ok := info["CompletionTokens"].(int); ok {
		u.OutputTokens = v
	}
	if v, ok := info["TotalTokens"].(int); ok {
		u.TotalTokens = v
	} else {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}
