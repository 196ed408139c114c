package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
)

type ClientService struct {
	Repo  *repositories.ClientRepository
	Email EmailService // optional
}

func NewClientService(repo *repositories.ClientRepository, email EmailService) *ClientService {
	return &ClientService{Repo: repo, Email: email}
}

func (s *ClientService) Create(client *models.Client) error {
	if strings.TrimSpace(client.FullName) == "" {
		return errors.New("full_name is required")
	}
	if strings.TrimSpace(client.Phone) == "" {
		return errors.New("phone is required")
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	if err := s.Repo.Create(client); err != nil {
		return err
	}

	if s.Email != nil && client.Email != nil {
		if err := s.Email.SendWelcomeEmail(*client.Email, client.FullName); err != nil {
			// warn but do not fail creation
			log.Printf("[client][create] welcome email to %s failed: %v", *client.Email, err)
		}
	}
	return nil
}

func (s *ClientService) GetByID(id int) (*models.Client, error) {
	return s.Repo.Get(id)
}

func (s *ClientService) GetByEmail(email string) (*models.Client, error) {
	return s.Repo.GetByEmail(email)
}

func (s *ClientService) GetByPhone(phone string) (*models.Client, error) {
	return s.Repo.GetByPhone(phone)
}

func (s *ClientService) List(limit, offset int) ([]*models.Client, error) {
	return s.Repo.List(limit, offset)
}

func (s *ClientService) Update(id int, patch *models.ClientPatch) (*models.Client, error) {
	return s.Repo.Update(id, patch.Apply)
}

func (s *ClientService) Delete(id int) (*models.Client, error) {
	return s.Repo.Delete(id)
}
