package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AuthService hides the password hashing scheme from the rest of the code.
// Passwords are stored as bcrypt hashes only; there is no plaintext compare
// anywhere.
type AuthService interface {
	HashPassword(plain string) (string, error)
	CheckPassword(hash, plain string) error
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *authService) CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
