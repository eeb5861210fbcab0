package service

import (
	"errors"

	"schoolsite/config"
	"schoolsite/internal/auth"
	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	cfg      *config.SessionConfig
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.SessionConfig, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Authenticate checks email and password. Unknown email, an account without a
// password hash, an empty password and a wrong password all yield
// domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !checkPassword(u, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and returns a signed session token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := auth.GenerateSessionToken(s.cfg, u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// UpdateCredentials changes the admin's email and, when newPassword is not
// empty, the password. The current password must match.
func (s *AuthService) UpdateCredentials(userID uint, newEmail, currentPassword, newPassword string) error {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if !checkPassword(u, currentPassword) {
		return domain.ErrInvalidCredentials
	}
	if newEmail != "" {
		u.Email = newEmail
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	return s.userRepo.Update(u)
}

func checkPassword(u *models.User, password string) bool {
	if u.PasswordHash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
