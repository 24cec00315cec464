package notify

import (
	"io"
	"strings"
	"testing"

	"github.com/Dan9191/finplan-service/internal/config"
	"github.com/sirupsen/logrus"
)

func TestPlanEmail(t *testing.T) {
	cfg := config.Defaults()
	cfg.SenderEmail = "planner@example.com"
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewSender(cfg, log)

	e, err := s.planEmail("asha@example.com", "Asha", "## At a glance\n\n| a | b |", []byte("%PDF-1.3 fake"))
	if err != nil {
		t.Fatalf("planEmail() error: %v", err)
	}
	if e.From != "planner@example.com" || len(e.To) != 1 || e.To[0] != "asha@example.com" {
		t.Errorf("addressing = %q -> %v", e.From, e.To)
	}
	if e.Subject != "Asha's Financial Blueprint" {
		t.Errorf("Subject = %q", e.Subject)
	}
	if !strings.Contains(string(e.Text), "Dear Asha") || !strings.Contains(string(e.Text), "## At a glance") {
		t.Errorf("Text = %s", e.Text)
	}
	if !strings.Contains(string(e.HTML), "<h2>At a glance</h2>") {
		t.Errorf("HTML = %s", e.HTML)
	}
	if len(e.Attachments) != 1 || e.Attachments[0].Filename != attachmentName {
		t.Fatalf("attachments = %+v", e.Attachments)
	}
	if _, err := e.Bytes(); err != nil {
		t.Errorf("Bytes() error: %v", err)
	}
}

func TestPlanEmailWithoutReport(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	e, err := NewSender(config.Defaults(), log).planEmail("a@example.com", "Friend", "", nil)
	if err != nil {
		t.Fatalf("planEmail() error: %v", err)
	}
	if len(e.Attachments) != 0 {
		t.Errorf("expected no attachments, got %d", len(e.Attachments))
	}
}
