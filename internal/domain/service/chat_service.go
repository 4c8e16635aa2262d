package service

import "context"

// ChatService defines the interface for the conversational recommendation
// backend. Implementations proxy the query to an upstream LLM provider.
type ChatService interface {
	// Complete sends the user query upstream and returns the generated reply.
	Complete(ctx context.Context, query string) (string, error)
}
