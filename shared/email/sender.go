// Package email mails the finished narrative profile as an HTML report.
package email

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"profile-stack/internal/models"
	"profile-stack/shared/config"
)

//go:embed report_template.html
var reportTemplate string

type Sender struct {
	config *config.EmailConfig
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{config: cfg}
}

// report is the template context for one profile email.
type report struct {
	Date        string
	Insight     *models.InsightPayload
	TopFacts    []string
	TrendAlerts []string
}

// SendProfileReport renders and sends the narrative profile. The snapshot
// contributes the evidence facts quoted under the narrative.
func (s *Sender) SendProfileReport(insight *models.InsightPayload, snap *models.Snapshot) error {
	if insight == nil {
		return fmt.Errorf("insight cannot be nil")
	}

	date := time.Now().Format("Jan 2, 2006")
	subject := fmt.Sprintf("Your Viewing Profile - %s", date)

	r := &report{Date: date, Insight: insight}
	if snap != nil {
		r.TopFacts = snap.EvidenceHints.TopFacts
		r.TrendAlerts = snap.EvidenceHints.TrendAlerts
	}

	body, err := s.generateBody(r)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.SendHTML(subject, body)
}

// SendHTML sends an email with custom HTML content.
func (s *Sender) SendHTML(subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, htmlBody))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.FromEmail, to, msg)
}

func (s *Sender) generateBody(r *report) (string, error) {
	tmpl := template.New("report").Funcs(template.FuncMap{
		"pct": func(v float64) int { return int(v * 100) },
	})

	tmpl, err := tmpl.Parse(reportTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
