package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"gamyam/internal/models"
)

type LeadService struct {
	Repo LeadRepo
	now  func() time.Time
}

func NewLeadService(repo LeadRepo) *LeadService {
	return &LeadService{Repo: repo, now: time.Now}
}

func (s *LeadService) Create(lead *models.Lead) error {
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	if err := lead.Validate(); err != nil {
		return err
	}
	lead.ID = uuid.NewString()
	now := s.now()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	return s.Repo.Create(lead)
}

func (s *LeadService) Update(id string, lead *models.Lead) (*models.Lead, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	lead.ID = current.ID
	lead.CreatedAt = current.CreatedAt
	lead.UpdatedAt = s.now()
	if err := s.Repo.Update(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) GetByID(id string) (*models.Lead, error) {
	return s.Repo.GetByID(id)
}

func (s *LeadService) Delete(id string) error {
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *LeadService) ListAll() ([]models.Lead, error) {
	return s.Repo.ListAll()
}
