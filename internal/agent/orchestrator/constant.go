package orchestrator

// Log prefixes
const (
	LogPrefixProcessMessage = "internal.agent.orchestrator.ProcessMessage"
)

// ApologyText is returned when routing or a handler fails unexpectedly.
const ApologyText = "I apologize, but I'm having trouble processing your request right now. Please try again or rephrase your question."

// HandlerError names the pseudo-handler recorded on apology replies.
const HandlerError = "error"
