package ports

import "context"

// Chat message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is a single role-tagged prompt message.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatRequest describes one synchronous completion.
type ChatRequest struct {
	// Model names the language model; empty selects the adapter default.
	Model       string
	Messages    []ChatMessage
	Temperature float64
	// JSON asks the backend to constrain output to a JSON document.
	JSON bool
}

// ChatModel returns the free-text completion for a request.
type ChatModel interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}
