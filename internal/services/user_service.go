package services

import (
	"errors"
	"strings"

	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type UserService struct {
	Repo *repositories.UserRepository
	Auth AuthService
}

func NewUserService(repo *repositories.UserRepository, auth AuthService) *UserService {
	return &UserService{Repo: repo, Auth: auth}
}

// Create hashes the plain password and stores the user.
func (s *UserService) Create(user *models.User, plainPassword string) error {
	if strings.TrimSpace(plainPassword) == "" {
		return errors.New("password is required")
	}
	hash, err := s.Auth.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.Repo.Create(user)
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	return s.Repo.Get(id)
}

func (s *UserService) GetByLogin(login string) (*models.User, error) {
	return s.Repo.GetByLogin(login)
}

func (s *UserService) List(limit, offset int) ([]*models.User, error) {
	return s.Repo.List(limit, offset)
}

// Update re-hashes the password when the patch carries one; Apply then sees
// only the hash.
func (s *UserService) Update(id int, patch *models.UserPatch) (*models.User, error) {
	if patch.Password != nil {
		hash, err := s.Auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}
	return s.Repo.Update(id, patch.Apply)
}

func (s *UserService) Delete(id int) (*models.User, error) {
	return s.Repo.Delete(id)
}
