package pipeline

import (
	"time"

	"gamyam/internal/models"
)

// Filters describes the active view over a deal collection. Every field is
// optional; a nil field imposes no constraint. The zero value matches all
// deals.
type Filters struct {
	Stage     *models.Stage `json:"stage,omitempty"`
	Assignee  *string       `json:"assignee,omitempty"`
	MinValue  *float64      `json:"minValue,omitempty"`
	MaxValue  *float64      `json:"maxValue,omitempty"`
	DateRange DateRange     `json:"dateRange"`
}

// DateRange bounds a deal's expected close date, inclusive on both sides.
// Either bound may be absent, in which case that side is unconstrained.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Matches reports whether the deal passes every set filter field. It is a
// pure predicate over its inputs.
func (f Filters) Matches(d models.Deal) bool {
	if f.Stage != nil && d.Stage != *f.Stage {
		return false
	}
	if f.Assignee != nil && d.AssignedTo != *f.Assignee {
		return false
	}
	if f.MinValue != nil && d.Value < *f.MinValue {
		return false
	}
	if f.MaxValue != nil && d.Value > *f.MaxValue {
		return false
	}
	if f.DateRange.Start != nil && d.ExpectedCloseDate.Before(*f.DateRange.Start) {
		return false
	}
	if f.DateRange.End != nil && d.ExpectedCloseDate.After(*f.DateRange.End) {
		return false
	}
	return true
}
