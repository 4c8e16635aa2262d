package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sip/internal/delivery/api/validator"
	"sip/internal/domain/entity"
	domainerrors "sip/internal/domain/errors"
	"sip/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase lets each test plug in the behavior it needs.
type stubAuthUsecase struct {
	signUp func(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error)
	signIn func(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error)
}

func (s *stubAuthUsecase) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	return s.signUp(ctx, input)
}

func (s *stubAuthUsecase) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	return s.signIn(ctx, input)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Name:         "Test User",
		ProfileImage: entity.DefaultProfileImage,
	}
	h := &AuthHandler{
		authUC: &stubAuthUsecase{
			signIn: func(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
				assert.Equal(t, "user@example.com", input.Email)
				return &usecase.SignInOutput{AccessToken: "access-token", User: user}, nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/signin", `{"email":"user@example.com","password":"secret123"}`)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "access-token", body["token"])
	assert.Equal(t, "Test User", body["name"])
	assert.Equal(t, "user@example.com", body["email"])
	assert.Equal(t, entity.DefaultProfileImage, body["profile_image"])
	assert.Equal(t, map[string]any{}, body["scores"])
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	h := &AuthHandler{
		authUC: &stubAuthUsecase{
			signIn: func(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
				return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in failed")
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/signin", `{"email":"user@example.com","password":"wrong"}`)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	h := &AuthHandler{
		authUC: &stubAuthUsecase{
			signUp: func(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
				return &usecase.SignUpOutput{
					AccessToken: "first-token",
					User:        &entity.User{ID: uuid.New(), Email: input.Email},
				}, nil
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/signup",
		`{"email":"new@example.com","password":"secret123","name":"New User","phone":"0912345678"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "first-token", body["token"])
}

func TestAuthHandler_SignUp_EmailTaken(t *testing.T) {
	h := &AuthHandler{
		authUC: &stubAuthUsecase{
			signUp: func(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
				return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
			},
		},
	}

	c, rec := newJSONContext(t, http.MethodPost, "/signup",
		`{"email":"taken@example.com","password":"secret123","name":"New User","phone":"0912345678"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "User already exists", body["message"])
}

func TestAuthHandler_SignUp_ShortPassword(t *testing.T) {
	h := &AuthHandler{authUC: &stubAuthUsecase{}}

	c, rec := newJSONContext(t, http.MethodPost, "/signup",
		`{"email":"new@example.com","password":"123","name":"New User","phone":"0912345678"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
	assert.NotEmpty(t, body["errors"])
}

func TestAuthHandler_SignUp_InvalidEmailListsFieldErrors(t *testing.T) {
	h := &AuthHandler{authUC: &stubAuthUsecase{}}

	c, rec := newJSONContext(t, http.MethodPost, "/signup",
		`{"email":"not-an-email","password":"secret123","name":"New User","phone":"0912345678"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body.Status)
	assert.Equal(t, "Request validation failed", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Email", body.Errors[0].Field)
	assert.Equal(t, "must be a valid email address", body.Errors[0].Message)
}
