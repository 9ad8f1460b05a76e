package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"timeclock/backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}

	path := filepath.Join(t.TempDir(), "private.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0600))

	return path
}

func TestGenTokenRoundTrip(t *testing.T) {
	keyFile := writeTestKey(t)

	claims := AuthClaims{
		ID:       42,
		Role:     auth.RoleManager,
		Email:    "manager@timeclock.local",
		ClientID: "client-1",
	}

	accessToken, refreshToken, err := GenToken(claims, keyFile)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	a, err := auth.NewAuth(keyFile)
	require.NoError(t, err)

	parsed, err := a.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, 42, parsed.UserId)
	assert.Equal(t, auth.RoleManager, parsed.Role)
	assert.Equal(t, "manager@timeclock.local", parsed.Email)
	assert.Equal(t, "client-1", parsed.ClientID)

	assert.True(t, parsed.Authorized(auth.RoleManager, auth.RoleAdmin))
	assert.False(t, parsed.Authorized(auth.RoleAdmin))
	assert.False(t, parsed.Authorized())
}

func TestVerifyTokens(t *testing.T) {
	keyFile := writeTestKey(t)

	claims := AuthClaims{ID: 7, Role: auth.RoleEmployee, Email: "e@timeclock.local"}

	accessToken, refreshToken, err := GenToken(claims, keyFile)
	require.NoError(t, err)

	accessClaims, refreshClaims, err := VerifyTokens(accessToken, refreshToken, keyFile)
	require.NoError(t, err)
	assert.Equal(t, 7, accessClaims.UserId)
	assert.Equal(t, 7, refreshClaims.UserId)

	t.Run("mismatched pair", func(t *testing.T) {
		_, otherRefresh, err := GenToken(AuthClaims{ID: 8, Role: auth.RoleEmployee}, keyFile)
		require.NoError(t, err)

		_, _, err = VerifyTokens(accessToken, otherRefresh, keyFile)
		require.Error(t, err)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		_, _, err := VerifyTokens(accessToken, "not-a-token", keyFile)
		require.Error(t, err)
	})
}

func TestValidateTokenRejectsForeignKey(t *testing.T) {
	keyFile := writeTestKey(t)
	otherKeyFile := writeTestKey(t)

	accessToken, _, err := GenToken(AuthClaims{ID: 1, Role: auth.RoleEmployee}, keyFile)
	require.NoError(t, err)

	a, err := auth.NewAuth(otherKeyFile)
	require.NoError(t, err)

	_, err = a.ValidateToken(accessToken)
	require.Error(t, err)
}
