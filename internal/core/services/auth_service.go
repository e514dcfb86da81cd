package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the API behind the owner's password. The bcrypt hash
// comes from configuration; a successful login yields a bearer token.
type AuthService struct {
	passwordHash []byte
	tokens       *TokenService
}

func NewAuthService(passwordHash string, tokens *TokenService) *AuthService {
	return &AuthService{
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate()
}

// HashPassword produces a hash suitable for the AUTH_PASSWORD_HASH setting.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
