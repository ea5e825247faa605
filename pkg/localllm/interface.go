package localllm

import "context"

// IClient talks to any OpenAI-compatible chat completion server running
// alongside the service (LM Studio, llama.cpp server, vLLM).
// Implementations are safe for concurrent use.
type IClient interface {
	// Complete sends the messages and returns the first choice.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
