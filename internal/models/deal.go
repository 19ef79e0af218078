package models

import (
	"errors"
	"fmt"
	"time"
)

// Stage is the pipeline position of a deal. The pipeline is ordered for
// display purposes only; any stage is reachable from any other stage.
type Stage string

const (
	StageLead        Stage = "lead"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosedWon   Stage = "closed_won"
	StageClosedLost  Stage = "closed_lost"
)

// Stages lists all pipeline stages in display order.
func Stages() []Stage {
	return []Stage{
		StageLead,
		StageQualified,
		StageProposal,
		StageNegotiation,
		StageClosedWon,
		StageClosedLost,
	}
}

func (s Stage) IsValid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// ErrValidation marks errors raised by field validation.
var ErrValidation = errors.New("validation failed")

// Deal is a sales-pipeline opportunity.
// Date fields are RFC3339 strings on the wire and time.Time everywhere else.
type Deal struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Value             float64   `json:"value"`
	Currency          string    `json:"currency"`
	Stage             Stage     `json:"stage"`
	Probability       float64   `json:"probability"`
	ExpectedCloseDate time.Time `json:"expectedCloseDate"`
	CustomerID        string    `json:"customerId"`
	AssignedTo        string    `json:"assignedTo"`
	Notes             []string  `json:"notes"`
	Attachments       []string  `json:"attachments"`
	Tags              []string  `json:"tags"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Validate checks field constraints. It does not check ID: the server
// assigns ids on create and trusts them afterwards.
func (d *Deal) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if d.Value < 0 {
		return fmt.Errorf("%w: value must be non-negative", ErrValidation)
	}
	if d.Probability < 0 || d.Probability > 100 {
		return fmt.Errorf("%w: probability must be between 0 and 100", ErrValidation)
	}
	if !d.Stage.IsValid() {
		return fmt.Errorf("%w: unknown stage %q", ErrValidation, d.Stage)
	}
	return nil
}
