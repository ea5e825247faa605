package llmprovider

import (
	"context"
	"errors"
	"testing"

	"campus-advisor/pkg/localllm"

	"github.com/google/go-cmp/cmp"
	"github.com/tmc/langchaingo/llms"
)

type fakeLocalClient struct {
	got  *localllm.Request
	resp *localllm.Response
	err  error
}

func (f *fakeLocalClient) Complete(ctx context.Context, req *localllm.Request) (*localllm.Response, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeLocalClient) Model() string { return "mistral" }

func TestLocalAdapter_GenerateContent(t *testing.T) {
	client := &fakeLocalClient{resp: &localllm.Response{
		Content: "hello",
		Usage:   localllm.Usage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
	}}
	a := NewLocalAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Role: RoleSystem, Text: "be kind"},
		Messages:          []Message{{Role: RoleUser, Text: "hi"}},
		Temperature:       0.7,
		MaxTokens:         100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMsgs := []localllm.Message{
		{Role: RoleSystem, Content: "be kind"},
		{Role: RoleUser, Content: "hi"},
	}
	if diff := cmp.Diff(wantMsgs, client.got.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	want := &Response{Text: "hello", ProviderName: ProviderLocal, ModelName: "mistral", Usage: &Usage{InputTokens: 3, OutputTokens: 1, TotalTokens: 4}}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalAdapter_WrapsError(t *testing.T) {
	a := NewLocalAdapter(&fakeLocalClient{err: localllm.ErrEmptyCompletion})
	_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Text: "hi"}}})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != ProviderLocal {
		t.Fatalf("expected ProviderError for local, got %v", err)
	}
	if !errors.Is(err, localllm.ErrEmptyCompletion) {
		t.Errorf("expected wrapped ErrEmptyCompletion, got %v", err)
	}
}

type fakeContentModel struct {
	got  []llms.MessageContent
	opts llms.CallOptions
	resp *llms.ContentResponse
	err  error
}

func (f *fakeContentModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.got = messages
	for _, o := range options {
		o(&f.opts)
	}
	return f.resp, f.err
}

func TestOllamaAdapter_GenerateContent(t *testing.T) {
	model := &fakeContentModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		Content:        " Join the chess club. ",
		GenerationInfo: map[string]any{"PromptTokens": 10, "CompletionTokens": 5},
	}}}}
	a := NewOllamaAdapter(model, "llama3")

	resp, err := a.GenerateContent(context.Background(), &Request{
		Messages: []Message{
			{Role: RoleUser, Text: "clubs?"},
			{Role: RoleAssistant, Text: "which kind?"},
		},
		Temperature: 0.3,
		MaxTokens:   20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Join the chess club." || resp.ModelName != "llama3" || resp.ProviderName != ProviderOllama {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("TotalTokens = %d, want 15", resp.Usage.TotalTokens)
	}
	if len(model.got) != 2 || model.got[0].Role != llms.ChatMessageTypeHuman || model.got[1].Role != llms.ChatMessageTypeAI {
		t.Errorf("unexpected message roles: %+v", model.got)
	}
	if model.opts.Temperature != 0.3 || model.opts.MaxTokens != 20 {
		t.Errorf("unexpected call options: %+v", model.opts)
	}
}

func TestOllamaAdapter_NoChoices(t *testing.T) {
	a := NewOllamaAdapter(&fakeContentModel{resp: &llms.ContentResponse{}}, "llama3")
	_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Text: "hi"}}})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
