package usecase

import "context"

// ChatUsecase defines the interface for the conversational recommendation flow.
type ChatUsecase interface {
	// GetResponse forwards the user query to the chat backend and returns
	// the generated reply.
	GetResponse(ctx context.Context, query string) (string, error)
}
