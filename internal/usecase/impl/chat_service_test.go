package impl

import (
	"context"
	"testing"

	domainerrors "sip/internal/domain/errors"
	mockService "sip/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_GetResponse_Success(t *testing.T) {
	chat := mockService.NewMockChatService(t)
	service := NewChatService(ChatServiceParams{
		Chat:   chat,
		Logger: newDiscardLogger(),
	})

	ctx := context.Background()
	chat.EXPECT().Complete(ctx, "something bitter").Return("Try a Negroni.", nil)

	reply, err := service.GetResponse(ctx, "something bitter")

	require.NoError(t, err)
	assert.Equal(t, "Try a Negroni.", reply)
}

func TestChatService_GetResponse_UpstreamFailure(t *testing.T) {
	chat := mockService.NewMockChatService(t)
	service := NewChatService(ChatServiceParams{
		Chat:   chat,
		Logger: newDiscardLogger(),
	})

	ctx := context.Background()
	chat.EXPECT().Complete(ctx, "something bitter").Return("", errors.New("rate limited"))

	_, err := service.GetResponse(ctx, "something bitter")

	// Upstream details must not leak to the caller.
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChatUpstream))
	assert.NotContains(t, err.Error(), "rate limited")
}
