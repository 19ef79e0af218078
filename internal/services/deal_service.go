package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"gamyam/internal/models"
)

type DealService struct {
	Repo DealRepo
	now  func() time.Time
}

func NewDealService(repo DealRepo) *DealService {
	return &DealService{Repo: repo, now: time.Now}
}

// Create validates the deal, assigns an id and stamps both timestamps.
func (s *DealService) Create(deal *models.Deal) error {
	if deal.Stage == "" {
		deal.Stage = models.StageLead
	}
	if err := deal.Validate(); err != nil {
		return err
	}
	deal.ID = uuid.NewString()
	now := s.now()
	deal.CreatedAt = now
	deal.UpdatedAt = now
	return s.Repo.Create(deal)
}

// Update replaces the stored deal wholesale, keeping its id and CreatedAt
// and restamping UpdatedAt.
func (s *DealService) Update(id string, deal *models.Deal) (*models.Deal, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	deal.ID = current.ID
	deal.CreatedAt = current.CreatedAt
	deal.UpdatedAt = s.now()
	if err := s.Repo.Update(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

// UpdateStage moves the deal to the given stage. Any stage is reachable
// from any other; only the target has to be a known stage.
func (s *DealService) UpdateStage(id string, stage models.Stage) (*models.Deal, error) {
	if !stage.IsValid() {
		return nil, models.ErrValidation
	}
	deal, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrNotFound
	}
	deal.Stage = stage
	deal.UpdatedAt = s.now()
	if err := s.Repo.Update(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DealService) GetByID(id string) (*models.Deal, error) {
	return s.Repo.GetByID(id)
}

func (s *DealService) Delete(id string) error {
	err := s.Repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *DealService) ListAll() ([]models.Deal, error) {
	return s.Repo.ListAll()
}

func (s *DealService) Filter(stage, assignedTo, from, to string, minValue, maxValue float64, limit, offset int) ([]models.Deal, error) {
	return s.Repo.Filter(stage, assignedTo, from, to, minValue, maxValue, limit, offset)
}
