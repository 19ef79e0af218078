package services

import (
	"time"

	"gamyam/internal/models"
	"gamyam/internal/pdf"
	"gamyam/internal/pipeline"
)

// SummaryReport is the /reports/summary payload: the deal pipeline figures
// plus lead counts by status.
type SummaryReport struct {
	GeneratedAt time.Time                 `json:"generatedAt"`
	Pipeline    pipeline.Summary          `json:"pipeline"`
	LeadCounts  map[models.LeadStatus]int `json:"leadCounts"`
}

type ReportService struct {
	Deals DealRepo
	Leads LeadRepo
	PDF   pdf.Generator
	Email EmailService
	now   func() time.Time
}

func NewReportService(dealRepo DealRepo, leadRepo LeadRepo, gen pdf.Generator, email EmailService) *ReportService {
	return &ReportService{Deals: dealRepo, Leads: leadRepo, PDF: gen, Email: email, now: time.Now}
}

// GetSummary recomputes the report from current storage on every call.
func (s *ReportService) GetSummary() (*SummaryReport, error) {
	deals, err := s.Deals.ListAll()
	if err != nil {
		return nil, err
	}
	leadCounts, err := s.Leads.CountByStatus()
	if err != nil {
		return nil, err
	}
	return &SummaryReport{
		GeneratedAt: s.now(),
		Pipeline:    pipeline.Summarize(deals),
		LeadCounts:  leadCounts,
	}, nil
}

// SummaryPDF renders the current summary to a PDF and returns its path.
func (s *ReportService) SummaryPDF() (string, error) {
	report, err := s.GetSummary()
	if err != nil {
		return "", err
	}
	return s.PDF.GeneratePipelineReport(pdf.ReportData{
		GeneratedAt: report.GeneratedAt,
		Pipeline:    report.Pipeline,
		LeadCounts:  report.LeadCounts,
	})
}

// EmailSummary renders the current summary and mails it with the PDF
// attached.
func (s *ReportService) EmailSummary(to string) error {
	report, err := s.GetSummary()
	if err != nil {
		return err
	}
	path, err := s.PDF.GeneratePipelineReport(pdf.ReportData{
		GeneratedAt: report.GeneratedAt,
		Pipeline:    report.Pipeline,
		LeadCounts:  report.LeadCounts,
	})
	if err != nil {
		return err
	}
	return s.Email.SendPipelineReport(to, report.Pipeline, path)
}

func (s *ReportService) FilterDeals(stage, assignedTo, from, to string, minValue, maxValue float64, limit, offset int) ([]models.Deal, error) {
	return s.Deals.Filter(stage, assignedTo, from, to, minValue, maxValue, limit, offset)
}
