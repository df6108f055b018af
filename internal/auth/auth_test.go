package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhasan/estatedesk/internal/auth"
)

const (
	testEmail    = "admin@estatedesk.local"
	testPassword = "s3cret-pass"
)

func newManager(t *testing.T, ttl time.Duration) *auth.Manager {
	t.Helper()

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	return auth.NewManager("test-secret-key-32-bytes-long!!!", ttl, testEmail, hash)
}

func TestManager_LoginAndValidate(t *testing.T) {
	m := newManager(t, time.Hour)

	token, err := m.Login(testEmail, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, claims.Email)
}

func TestManager_BadCredentials(t *testing.T) {
	m := newManager(t, time.Hour)

	_, err := m.Login(testEmail, "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = m.Login("someone@else.example", testPassword)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestManager_ExpiredToken(t *testing.T) {
	m := newManager(t, -time.Minute)

	token, err := m.Login(testEmail, testPassword)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestManager_TamperedToken(t *testing.T) {
	m := newManager(t, time.Hour)

	token, err := m.Login(testEmail, testPassword)
	require.NoError(t, err)

	other := auth.NewManager("another-secret-entirely-here!!!!", time.Hour, testEmail, "")

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
