package services

import (
	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type RestrictionTypeService struct {
	Repo *repositories.RestrictionTypeRepository
}

func NewRestrictionTypeService(repo *repositories.RestrictionTypeRepository) *RestrictionTypeService {
	return &RestrictionTypeService{Repo: repo}
}

func (s *RestrictionTypeService) Create(t *models.RestrictionType) error {
	return s.Repo.Create(t)
}

func (s *RestrictionTypeService) GetByCode(code string) (*models.RestrictionType, error) {
	return s.Repo.Get(code)
}

func (s *RestrictionTypeService) List(limit, offset int) ([]*models.RestrictionType, error) {
	return s.Repo.List(limit, offset)
}

func (s *RestrictionTypeService) Update(code string, patch *models.RestrictionTypePatch) (*models.RestrictionType, error) {
	return s.Repo.Update(code, patch.Apply)
}

func (s *RestrictionTypeService) Delete(code string) (*models.RestrictionType, error) {
	return s.Repo.Delete(code)
}
