package services

import (
	"errors"
	"strings"

	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type RealEstateService struct {
	Repo *repositories.RealEstateRepository
}

func NewRealEstateService(repo *repositories.RealEstateRepository) *RealEstateService {
	return &RealEstateService{Repo: repo}
}

func (s *RealEstateService) Create(obj *models.RealEstate) error {
	if strings.TrimSpace(obj.Address) == "" {
		return errors.New("address is required")
	}
	return s.Repo.Create(obj)
}

func (s *RealEstateService) GetByID(id int) (*models.RealEstate, error) {
	return s.Repo.Get(id)
}

func (s *RealEstateService) List(limit, offset int) ([]*models.RealEstate, error) {
	return s.Repo.List(limit, offset)
}

func (s *RealEstateService) Update(id int, patch *models.RealEstatePatch) (*models.RealEstate, error) {
	return s.Repo.Update(id, patch.Apply)
}

func (s *RealEstateService) Delete(id int) (*models.RealEstate, error) {
	return s.Repo.Delete(id)
}
