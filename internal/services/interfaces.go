package services

import (
	"errors"

	"gamyam/internal/models"
)

// ErrNotFound is returned when an id does not exist.
var ErrNotFound = errors.New("not found")

// DealRepo is what the deal and report services need from storage.
// *repositories.DealRepository satisfies it.
type DealRepo interface {
	Create(deal *models.Deal) error
	GetByID(id string) (*models.Deal, error)
	Update(deal *models.Deal) error
	Delete(id string) error
	ListAll() ([]models.Deal, error)
	Filter(stage, assignedTo, from, to string, minValue, maxValue float64, limit, offset int) ([]models.Deal, error)
}

// LeadRepo is what the lead and report services need from storage.
// *repositories.LeadRepository satisfies it.
type LeadRepo interface {
	Create(lead *models.Lead) error
	GetByID(id string) (*models.Lead, error)
	Update(lead *models.Lead) error
	Delete(id string) error
	ListAll() ([]models.Lead, error)
	CountByStatus() (map[models.LeadStatus]int, error)
}
