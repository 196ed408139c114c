package services

import (
	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

const dashboardListLimit = 5

type DashboardService struct {
	Repo *repositories.DashboardRepository
}

func NewDashboardService(repo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

// GetData assembles the summary document: three counters plus the five most
// recent deals and the five newest properties.
func (s *DashboardService) GetData() (*models.DashboardData, error) {
	totalProperties, err := s.Repo.CountProperties()
	if err != nil {
		return nil, err
	}
	totalClients, err := s.Repo.CountClients()
	if err != nil {
		return nil, err
	}
	activeDeals, err := s.Repo.CountActiveDeals()
	if err != nil {
		return nil, err
	}
	recentDeals, err := s.Repo.RecentDeals(dashboardListLimit)
	if err != nil {
		return nil, err
	}
	newProperties, err := s.Repo.NewProperties(dashboardListLimit)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		Stats: models.DashboardStats{
			TotalProperties: totalProperties,
			TotalClients:    totalClients,
			ActiveDeals:     activeDeals,
		},
		RecentDeals:   recentDeals,
		NewProperties: newProperties,
	}, nil
}
