package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"gamyam/internal/pipeline"
)

type EmailService interface {
	SendPipelineReport(to string, summary pipeline.Summary, attachmentPath string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendPipelineReport(to string, summary pipeline.Summary, attachmentPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Gamyam pipeline report")

	body := fmt.Sprintf(`
		<h2>Pipeline report</h2>
		<p>Deals in pipeline: <strong>%d</strong></p>
		<p>Total value: <strong>%.2f</strong></p>
		<p>Weighted value: <strong>%.2f</strong></p>
		<p>The full report is attached as PDF.</p>
	`, summary.TotalDealCount, summary.TotalValue, summary.WeightedValue)

	m.SetBody("text/html", body)
	if attachmentPath != "" {
		m.Attach(attachmentPath)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send pipeline report: %w", err)
	}
	return nil
}
