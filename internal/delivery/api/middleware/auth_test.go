package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sip/internal/domain/service"
	mockService "sip/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/getprofile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{UserID: userID}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("Bearer valid-token")

	var gotUserID uuid.UUID
	next := func(c echo.Context) error {
		id, ok := GetUserID(c)
		require.True(t, ok)
		gotUserID = id
		return nil
	}

	err := m.Authenticate(next)(c)

	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext("")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")
		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	next := func(c echo.Context) error { return nil }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is malformed"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer bad-token")

	next := func(c echo.Context) error { return nil }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}
