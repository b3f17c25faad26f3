package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sovoz-hq/sovoz/internal/application/user/usecases"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/handlers/testutil"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result  *usecases.AuthResult
	err     error
	lastCmd usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
	return m.result, m.err
}

type mockGetCurrentUserUC struct {
	result *usecases.UserResult
	err    error
}

func (m *mockGetCurrentUserUC) Execute(ctx context.Context, query usecases.GetCurrentUserQuery) (*usecases.UserResult, error) {
	return m.result, m.err
}

type mockRequestResetUC struct {
	err    error
	called bool
}

func (m *mockRequestResetUC) Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error {
	m.called = true
	return m.err
}

type mockResetPasswordUC struct {
	err     error
	lastCmd usecases.ResetPasswordCommand
}

func (m *mockResetPasswordUC) Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error {
	m.lastCmd = cmd
	return m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func testAuthResult() *usecases.AuthResult {
	return &usecases.AuthResult{
		User: usecases.UserResult{
			ID:        1,
			Name:      "Test User",
			Email:     "test@example.com",
			Role:      "user",
			CreatedAt: time.Now().UTC(),
		},
		Token:     "test-token",
		ExpiresIn: 86400,
	}
}

func newTestAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	getCurrentUC usecases.GetCurrentUserExecutor,
	requestResetUC usecases.RequestPasswordResetExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
) *AuthHandler {
	return NewAuthHandler(registerUC, loginUC, getCurrentUC, requestResetUC, resetPasswordUC, testutil.NewMockLogger())
}

// =====================================================================
// TestAuthHandler_Register
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{result: testAuthResult()}
	handler := newTestAuthHandler(mockUC, nil, nil, nil, nil)

	reqBody := RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var data usecases.AuthResult
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", data.User.Email)
	assert.Equal(t, "test-token", data.Token)

	assert.Equal(t, "Test User", mockUC.lastCmd.Name)
}

func TestAuthHandler_Register_InvalidRequest(t *testing.T) {
	handler := newTestAuthHandler(&mockRegisterUC{}, nil, nil, nil, nil)

	reqBody := map[string]string{"email": "test@example.com"} // missing name, password
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := &mockRegisterUC{err: errors.NewConflictError("email already registered")}
	handler := newTestAuthHandler(mockUC, nil, nil, nil, nil)

	reqBody := RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "conflict", resp.Error.Type)
}

// =====================================================================
// TestAuthHandler_Login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{result: testAuthResult()}
	handler := newTestAuthHandler(nil, mockUC, nil, nil, nil)

	reqBody := LoginRequest{Email: "test@example.com", Password: "password123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var data usecases.AuthResult
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, "test-token", data.Token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid email or password")}
	handler := newTestAuthHandler(nil, mockUC, nil, nil, nil)

	reqBody := LoginRequest{Email: "test@example.com", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newTestAuthHandler(nil, &mockLoginUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{"email": "test@example.com"})

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestAuthHandler_GetCurrentUser
// =====================================================================

func TestAuthHandler_GetCurrentUser_Success(t *testing.T) {
	mockUC := &mockGetCurrentUserUC{result: &usecases.UserResult{
		ID:    7,
		Name:  "Test User",
		Email: "test@example.com",
		Role:  "admin",
	}}
	handler := newTestAuthHandler(nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/user", nil)
	testutil.SetAuthContext(c, 7, "test@example.com", "admin")

	handler.GetCurrentUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var data struct {
		User usecases.UserResult `json:"user"`
	}
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, uint(7), data.User.ID)
	assert.Equal(t, "admin", data.User.Role)
}

func TestAuthHandler_GetCurrentUser_NoAuthContext(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, &mockGetCurrentUserUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/user", nil)

	handler.GetCurrentUser(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// TestAuthHandler_ForgotPassword
// =====================================================================

func TestAuthHandler_ForgotPassword_AlwaysSucceeds(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "known email", err: nil},
		{name: "unknown email", err: errors.NewNotFoundError("user not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockRequestResetUC{err: tt.err}
			handler := newTestAuthHandler(nil, nil, nil, mockUC, nil)

			reqBody := ForgotPasswordRequest{Email: "test@example.com"}
			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/forgot-password", reqBody)

			handler.ForgotPassword(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, mockUC.called)

			var resp testutil.APIResponse
			err := testutil.ParseResponse(w, &resp)
			require.NoError(t, err)
			assert.True(t, resp.Success)
		})
	}
}

func TestAuthHandler_ForgotPassword_InvalidEmail(t *testing.T) {
	mockUC := &mockRequestResetUC{}
	handler := newTestAuthHandler(nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": "not-an-email"})

	handler.ForgotPassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

// =====================================================================
// TestAuthHandler_ResetPassword
// =====================================================================

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	mockUC := &mockResetPasswordUC{}
	handler := newTestAuthHandler(nil, nil, nil, nil, mockUC)

	reqBody := ResetPasswordRequest{Token: "reset-token", Password: "newpassword"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/reset-password", reqBody)

	handler.ResetPassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reset-token", mockUC.lastCmd.Token)
	assert.Equal(t, "newpassword", mockUC.lastCmd.NewPassword)
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	mockUC := &mockResetPasswordUC{err: errors.NewUnauthorizedError("invalid or expired reset token")}
	handler := newTestAuthHandler(nil, nil, nil, nil, mockUC)

	reqBody := ResetPasswordRequest{Token: "bogus", Password: "newpassword"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/reset-password", reqBody)

	handler.ResetPassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestAuthHandler_ResetPassword_ShortPassword(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil, nil, &mockResetPasswordUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token":    "reset-token",
		"password": "short",
	})

	handler.ResetPassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
