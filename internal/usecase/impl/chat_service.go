package impl

import (
	"context"
	"log/slog"

	deliverycontext "sip/internal/delivery/context"
	domainerrors "sip/internal/domain/errors"
	"sip/internal/domain/service"
	"sip/internal/usecase"

	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	chat   service.ChatService
	logger *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Chat   service.ChatService
	Logger *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chat:   params.Chat,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetResponse forwards the user query to the chat backend.
func (srv *chatService) GetResponse(ctx context.Context, query string) (string, error) {
	reply, err := srv.chat.Complete(ctx, query)
	if err != nil {
		// Upstream details stay in the log; clients get a generic failure.
		srv.log(ctx).Error("Chat completion failed", slog.Any("error", err))

		return "", domainerrors.ErrChatUpstream.WrapMessage("chat completion failed")
	}

	return reply, nil
}
