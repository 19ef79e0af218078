package models

import (
	"fmt"
	"strings"
	"time"
)

// LeadStatus is the qualification state of a lead. Leads are a separate,
// simpler entity than deals and keep their own status enumeration.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadLost      LeadStatus = "lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadLost:
		return true
	}
	return false
}

type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Company   string     `json:"company"`
	Status    LeadStatus `json:"status"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (l *Lead) Validate() error {
	if len(l.Name) < 2 || len(l.Name) > 50 {
		return fmt.Errorf("%w: name must be 2-50 characters", ErrValidation)
	}
	if !strings.Contains(l.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(l.Phone) < 10 {
		return fmt.Errorf("%w: phone must be at least 10 characters", ErrValidation)
	}
	if len(l.Company) < 2 || len(l.Company) > 100 {
		return fmt.Errorf("%w: company must be 2-100 characters", ErrValidation)
	}
	if !l.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, l.Status)
	}
	if len(l.Notes) > 500 {
		return fmt.Errorf("%w: notes must be at most 500 characters", ErrValidation)
	}
	return nil
}
