// Package notify delivers plan summaries by e-mail.
package notify

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/Dan9191/finplan-service/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
)

const attachmentName = "financial-blueprint.pdf"

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	md     goldmark.Markdown
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		md:     goldmark.New(),
	}
}

// SendPlanSummary mails the markdown summary, rendered to HTML as well, with the PDF attached
func (s *Sender) SendPlanSummary(to, name, summary string, pdf []byte) error {
	e, err := s.planEmail(to, name, summary, pdf)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send plan summary to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) planEmail(to, name, summary string, pdf []byte) (*email.Email, error) {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("%s's Financial Blueprint", name)

	body := fmt.Sprintf("Dear %s,\n\nHere is the plan you built today. The full blueprint is attached as a PDF.\n\n", name)
	body += summary
	body += "\n\nProjections are illustrative, not investment advice.\n\nBest regards,\nFinPlan"
	e.Text = []byte(body)

	var html bytes.Buffer
	if err := s.md.Convert([]byte(body), &html); err != nil {
		return nil, fmt.Errorf("failed to render email body: %w", err)
	}
	e.HTML = html.Bytes()

	if len(pdf) > 0 {
		if _, err := e.Attach(bytes.NewReader(pdf), attachmentName, "application/pdf"); err != nil {
			return nil, fmt.Errorf("failed to attach report: %w", err)
		}
	}
	return e, nil
}
