package user

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
)

// =============================================================================
// Test helpers
// =============================================================================

// fakeHasher is a deterministic PasswordHasher for testing.
type fakeHasher struct {
	failHash bool
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.failHash {
		return "", fmt.Errorf("hash failed")
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// validEmail creates a valid Email value object for testing.
func validEmail(t *testing.T) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail("test@example.com")
	require.NoError(t, err)
	return email
}

// validPassword creates a valid Password value object for testing.
func validPassword(t *testing.T, pw string) *vo.Password {
	t.Helper()
	password, err := vo.NewPassword(pw)
	require.NoError(t, err)
	return password
}

// newTestUser creates a new user with valid defaults for testing.
func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("John Doe", validEmail(t))
	require.NoError(t, err)
	return u
}

// =============================================================================
// NewUser
// =============================================================================

func TestNewUser(t *testing.T) {
	t.Run("creates user with defaults", func(t *testing.T) {
		u, err := NewUser("John Doe", validEmail(t))
		require.NoError(t, err)

		assert.Equal(t, uint(0), u.ID())
		assert.Equal(t, "John Doe", u.Name())
		assert.Equal(t, "test@example.com", u.Email().String())
		assert.Equal(t, authorization.RoleUser, u.Role())
		assert.False(t, u.IsAdmin())
		assert.False(t, u.HasPassword())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("", validEmail(t))
		assert.Error(t, err)
	})

	t.Run("rejects nil email", func(t *testing.T) {
		_, err := NewUser("John Doe", nil)
		assert.Error(t, err)
	})
}

func TestReconstructUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("reconstructs with auth data", func(t *testing.T) {
		hash := "sometokenhash"
		expires := now.Add(time.Hour)
		u, err := ReconstructUser(7, "Jane", validEmail(t), authorization.RoleAdmin, now, now, &UserAuthData{
			PasswordHash:           "hashed:secret1",
			PasswordResetToken:     &hash,
			PasswordResetExpiresAt: &expires,
		})
		require.NoError(t, err)

		assert.Equal(t, uint(7), u.ID())
		assert.True(t, u.IsAdmin())
		assert.True(t, u.HasPassword())
		assert.Equal(t, "hashed:secret1", u.GetAuthData().PasswordHash)
		assert.Equal(t, hash, *u.GetAuthData().PasswordResetToken)
	})

	t.Run("rejects zero ID", func(t *testing.T) {
		_, err := ReconstructUser(0, "Jane", validEmail(t), authorization.RoleUser, now, now, nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := ReconstructUser(1, "Jane", validEmail(t), authorization.UserRole("root"), now, now, nil)
		assert.Error(t, err)
	})
}

func TestSetID(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.SetID(42))
	assert.Equal(t, uint(42), u.ID())

	assert.Error(t, u.SetID(43), "ID can only be set once")
}

// =============================================================================
// Password lifecycle
// =============================================================================

func TestSetAndVerifyPassword(t *testing.T) {
	hasher := &fakeHasher{}
	u := newTestUser(t)

	require.NoError(t, u.SetPassword(validPassword(t, "secret1"), hasher))
	assert.True(t, u.HasPassword())

	assert.NoError(t, u.VerifyPassword("secret1", hasher))
	assert.Error(t, u.VerifyPassword("wrong-password", hasher))
}

func TestVerifyPasswordWithoutPassword(t *testing.T) {
	u := newTestUser(t)
	err := u.VerifyPassword("anything", &fakeHasher{})
	assert.Error(t, err)
}

func TestSetPasswordHashFailure(t *testing.T) {
	u := newTestUser(t)
	err := u.SetPassword(validPassword(t, "secret1"), &fakeHasher{failHash: true})
	assert.Error(t, err)
	assert.False(t, u.HasPassword())
}

// =============================================================================
// Password reset
// =============================================================================

func TestPasswordResetFlow(t *testing.T) {
	hasher := &fakeHasher{}
	u := newTestUser(t)
	require.NoError(t, u.SetPassword(validPassword(t, "oldpass1"), hasher))

	token, err := u.GeneratePasswordResetToken(time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token.Value())
	assert.Equal(t, token.Hash(), *u.GetAuthData().PasswordResetToken)
	assert.NotEqual(t, token.Value(), *u.GetAuthData().PasswordResetToken, "plain token must not be stored")

	require.NoError(t, u.ResetPassword(token.Value(), validPassword(t, "newpass1"), hasher))

	assert.NoError(t, u.VerifyPassword("newpass1", hasher))
	assert.Error(t, u.VerifyPassword("oldpass1", hasher))
	assert.Nil(t, u.GetAuthData().PasswordResetToken, "token is single use")

	err = u.ResetPassword(token.Value(), validPassword(t, "again123"), hasher)
	assert.Error(t, err, "used token cannot be replayed")
}

func TestResetPasswordExpiredToken(t *testing.T) {
	hasher := &fakeHasher{}
	u := newTestUser(t)

	token, err := u.GeneratePasswordResetToken(-time.Minute)
	require.NoError(t, err)

	err = u.ResetPassword(token.Value(), validPassword(t, "newpass1"), hasher)
	assert.Error(t, err)
}

func TestResetPasswordWrongToken(t *testing.T) {
	hasher := &fakeHasher{}
	u := newTestUser(t)

	_, err := u.GeneratePasswordResetToken(time.Hour)
	require.NoError(t, err)

	other, err := vo.GenerateToken()
	require.NoError(t, err)

	err = u.ResetPassword(other.Value(), validPassword(t, "newpass1"), hasher)
	assert.Error(t, err)
}

func TestResetPasswordWithoutToken(t *testing.T) {
	u := newTestUser(t)
	err := u.ResetPassword("deadbeefdeadbeefdeadbeefdeadbeef", validPassword(t, "newpass1"), &fakeHasher{})
	assert.Error(t, err)
}

// =============================================================================
// Roles
// =============================================================================

func TestPromoteToAdmin(t *testing.T) {
	u := newTestUser(t)
	assert.False(t, u.IsAdmin())

	u.PromoteToAdmin()
	assert.True(t, u.IsAdmin())

	u.PromoteToAdmin()
	assert.True(t, u.IsAdmin(), "promotion is idempotent")
}
