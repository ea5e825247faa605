package localllm

import "time"

const (
	// DefaultModel is what LM Studio ships as its default instruct model.
	DefaultModel = "mistralai/mistral-7b-instruct-v0.3"

	// DefaultBaseURL points at a local LM Studio server.
	DefaultBaseURL = "http://localhost:1234/v1"

	// DefaultTimeout is generous: local models on a laptop are slow.
	DefaultTimeout = 120 * time.Second

	completionsPath = "/chat/completions"
)
