package service

import (
	"github.com/mandilinkybl-pixel/madirate/auth"
	"github.com/mandilinkybl-pixel/madirate/customerrors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(userID, password string) (string, error)
}

type AuthServiceImpl struct {
	adminUser string
	adminHash string
}

func NewAuthService(adminUser, adminHash string) AuthService {
	return &AuthServiceImpl{adminUser: adminUser, adminHash: adminHash}
}

// Login checks the configured admin credentials and issues a session
// token.
func (s *AuthServiceImpl) Login(userID, password string) (string, error) {
	if userID != s.adminUser {
		return "", customerrors.NewValidation("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", customerrors.NewValidation("invalid credentials")
	}
	return auth.GenerateToken(userID)
}
