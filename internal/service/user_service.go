package service

import (
	"github.com/askboard/backend/internal/apperr"
	"github.com/askboard/backend/internal/models"
	"github.com/askboard/backend/internal/repository"
)

type UserService struct {
	users *repository.UserRepository
	auth  *AuthService
}

func NewUserService(users *repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{
		users: users,
		auth:  auth,
	}
}

// GetProfile returns the user behind the public uuid. Any signed-in user
// may look at any profile; the sensitive columns never leave the handler.
func (s *UserService) GetProfile(userUUID, authorization string) (*models.User, error) {
	_, err := s.auth.RequireActiveSession(authorization,
		"User is signed out.Sign in first to get user details")
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUUID(userUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("USR-001", "User with entered uuid does not exist")
	}

	return user, nil
}
