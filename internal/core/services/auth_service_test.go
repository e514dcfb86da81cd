package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martagillo/habitline/internal/core/services"
)

func newAuthFixture(t *testing.T) (*services.AuthService, *services.TokenService) {
	t.Helper()
	hash, err := services.HashPassword("correct-horse")
	require.NoError(t, err)
	tokens := services.NewTokenService("test-secret", "habitline", time.Hour)
	return services.NewAuthService(hash, tokens), tokens
}

func TestAuthService_Login(t *testing.T) {
	t.Run("Success: Correct password yields a valid token", func(t *testing.T) {
		auth, tokens := newAuthFixture(t)

		token, err := auth.Login("correct-horse")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NoError(t, tokens.Validate(token))
	})

	t.Run("Fail: Wrong password", func(t *testing.T) {
		auth, _ := newAuthFixture(t)

		_, err := auth.Login("battery-staple")

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Fail: Empty password", func(t *testing.T) {
		auth, _ := newAuthFixture(t)

		_, err := auth.Login("")

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestTokenService_Validate(t *testing.T) {
	t.Run("Fail: Token signed with a different secret", func(t *testing.T) {
		issuing := services.NewTokenService("secret-a", "habitline", time.Hour)
		validating := services.NewTokenService("secret-b", "habitline", time.Hour)

		token, err := issuing.Generate()
		require.NoError(t, err)

		assert.Error(t, validating.Validate(token))
	})

	t.Run("Fail: Wrong issuer", func(t *testing.T) {
		issuing := services.NewTokenService("test-secret", "someone-else", time.Hour)
		validating := services.NewTokenService("test-secret", "habitline", time.Hour)

		token, err := issuing.Generate()
		require.NoError(t, err)

		assert.Error(t, validating.Validate(token))
	})

	t.Run("Fail: Expired token", func(t *testing.T) {
		tokens := services.NewTokenService("test-secret", "habitline", -time.Hour)

		token, err := tokens.Generate()
		require.NoError(t, err)

		assert.Error(t, tokens.Validate(token))
	})

	t.Run("Fail: Garbage token", func(t *testing.T) {
		tokens := services.NewTokenService("test-secret", "habitline", time.Hour)

		assert.Error(t, tokens.Validate("not.a.jwt"))
	})
}
