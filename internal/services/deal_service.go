package services

import (
	"errors"
	"log"
	"strings"

	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type DealService struct {
	Repo     *repositories.DealRepository
	Notifier DealNotifier // optional
}

func NewDealService(repo *repositories.DealRepository, notifier DealNotifier) *DealService {
	return &DealService{Repo: repo, Notifier: notifier}
}

func (s *DealService) Create(deal *models.Deal) error {
	if strings.TrimSpace(deal.DealType) == "" {
		return errors.New("deal_type is required")
	}
	if strings.TrimSpace(string(deal.Amount)) == "" {
		return errors.New("amount is required")
	}
	if err := s.Repo.Create(deal); err != nil {
		return err
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyDealCreated(deal); err != nil {
			// warn but do not fail creation
			log.Printf("[deal][notify] deal %d alert failed: %v", deal.ID, err)
		}
	}
	return nil
}

func (s *DealService) GetByID(id int) (*models.Deal, error) {
	return s.Repo.Get(id)
}

func (s *DealService) GetSummary(id int) (*models.DealSummary, error) {
	return s.Repo.GetSummary(id)
}

func (s *DealService) List(limit, offset int) ([]*models.Deal, error) {
	return s.Repo.List(limit, offset)
}

func (s *DealService) Update(id int, patch *models.DealPatch) (*models.Deal, error) {
	return s.Repo.Update(id, patch.Apply)
}

func (s *DealService) Delete(id int) (*models.Deal, error) {
	return s.Repo.Delete(id)
}
