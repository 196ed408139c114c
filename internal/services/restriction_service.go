package services

import (
	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type RestrictionService struct {
	Repo *repositories.RestrictionRepository
}

func NewRestrictionService(repo *repositories.RestrictionRepository) *RestrictionService {
	return &RestrictionService{Repo: repo}
}

func (s *RestrictionService) Create(r *models.Restriction) error {
	return s.Repo.Create(r)
}

func (s *RestrictionService) GetByID(id int) (*models.Restriction, error) {
	return s.Repo.Get(id)
}

func (s *RestrictionService) List(limit, offset int) ([]*models.Restriction, error) {
	return s.Repo.List(limit, offset)
}

func (s *RestrictionService) Update(id int, patch *models.RestrictionPatch) (*models.Restriction, error) {
	return s.Repo.Update(id, patch.Apply)
}

func (s *RestrictionService) Delete(id int) (*models.Restriction, error) {
	return s.Repo.Delete(id)
}
