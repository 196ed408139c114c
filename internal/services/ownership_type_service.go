package services

import (
	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type OwnershipTypeService struct {
	Repo *repositories.OwnershipTypeRepository
}

func NewOwnershipTypeService(repo *repositories.OwnershipTypeRepository) *OwnershipTypeService {
	return &OwnershipTypeService{Repo: repo}
}

func (s *OwnershipTypeService) Create(t *models.OwnershipType) error {
	return s.Repo.Create(t)
}

func (s *OwnershipTypeService) GetByCode(code string) (*models.OwnershipType, error) {
	return s.Repo.Get(code)
}

func (s *OwnershipTypeService) List(limit, offset int) ([]*models.OwnershipType, error) {
	return s.Repo.List(limit, offset)
}

func (s *OwnershipTypeService) Update(code string, patch *models.OwnershipTypePatch) (*models.OwnershipType, error) {
	return s.Repo.Update(code, patch.Apply)
}

func (s *OwnershipTypeService) Delete(code string) (*models.OwnershipType, error) {
	return s.Repo.Delete(code)
}
