package services

import (
	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type OwnershipService struct {
	Repo *repositories.OwnershipRepository
}

func NewOwnershipService(repo *repositories.OwnershipRepository) *OwnershipService {
	return &OwnershipService{Repo: repo}
}

func (s *OwnershipService) Create(o *models.Ownership) error {
	return s.Repo.Create(o)
}

func (s *OwnershipService) GetByID(id int) (*models.Ownership, error) {
	return s.Repo.Get(id)
}

func (s *OwnershipService) List(limit, offset int) ([]*models.Ownership, error) {
	return s.Repo.List(limit, offset)
}

func (s *OwnershipService) Update(id int, patch *models.OwnershipPatch) (*models.Ownership, error) {
	return s.Repo.Update(id, patch.Apply)
}

func (s *OwnershipService) Delete(id int) (*models.Ownership, error) {
	return s.Repo.Delete(id)
}
