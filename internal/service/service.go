package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/finplan-service/internal/calculator"
	"github.com/Dan9191/finplan-service/internal/catalog"
	"github.com/Dan9191/finplan-service/internal/config"
	"github.com/Dan9191/finplan-service/internal/dashboard"
	"github.com/Dan9191/finplan-service/internal/education"
	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/policy"
	"github.com/Dan9191/finplan-service/internal/report"
	"github.com/Dan9191/finplan-service/internal/repository"
	"github.com/Dan9191/finplan-service/internal/wizard"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrTopicNotFound      = education.ErrTopicNotFound
	ErrPlanNotReady       = errors.New("plan not completed yet")
	ErrMailerDisabled     = errors.New("email delivery is not configured")
)

// Mailer delivers a plan summary with the PDF attached
type Mailer interface {
	SendPlanSummary(to, name, summary string, pdf []byte) error
}

// Service handles business logic
type Service struct {
	store   repository.SessionStore
	catalog *catalog.Catalog
	policy  *policy.Policy
	calc    *calculator.Calculator
	machine *wizard.Machine
	library *education.Library
	tokens  Tokens
	locks   *sessionLocks
	mailer  Mailer
	log     *logrus.Logger
	config  *config.Config
	now     func() time.Time
}

// NewService initializes a new service. mailer may be nil when SMTP is not configured.
func NewService(store repository.SessionStore, mailer Mailer, log *logrus.Logger, cfg *config.Config) *Service {
	cat := catalog.New()
	pol := policy.New()
	calc := calculator.New(pol, cat)
	return &Service{
		store:   store,
		catalog: cat,
		policy:  pol,
		calc:    calc,
		machine: wizard.NewMachine(calc, log),
		library: education.NewLibrary(cat),
		tokens:  Tokens{Secret: []byte(cfg.JWTSecret), TTL: cfg.SessionTTL},
		locks:   newSessionLocks(),
		mailer:  mailer,
		log:     log,
		config:  cfg,
		now:     time.Now,
	}
}

// Tokens exposes the token verifier used by the session middleware
func (s *Service) Tokens() Tokens {
	return s.tokens
}

// Plan runs the calculator on a profile and returns the result with its fingerprint
func (s *Service) Plan(p models.UserProfile) (models.PlanningResult, string, error) {
	res := s.calc.Plan(p)
	fp, err := Fingerprint([]byte(s.config.FingerprintKey), res)
	if err != nil {
		return models.PlanningResult{}, "", err
	}
	return res, fp, nil
}

// PlanDashboard builds the dashboard view model for a profile
func (s *Service) PlanDashboard(p models.UserProfile) dashboard.Dashboard {
	return dashboard.Build(p, s.calc.Plan(p))
}

// PlanReport renders the PDF blueprint for a profile
func (s *Service) PlanReport(p models.UserProfile) ([]byte, error) {
	return report.Blueprint(s.PlanDashboard(p), s.now())
}

// Instruments lists the catalog
func (s *Service) Instruments() []models.InstrumentRecord {
	return s.catalog.Instruments()
}

// Instrument returns one catalog entry
func (s *Service) Instrument(id string) (models.InstrumentRecord, error) {
	rec, ok := s.catalog.Instrument(id)
	if !ok {
		return models.InstrumentRecord{}, fmt.Errorf("instrument %q: %w", id, ErrInstrumentNotFound)
	}
	return rec, nil
}

// AllocationView is the policy entry applied to a tier
type AllocationView struct {
	Requested   string                     `json:"requested"`
	RiskProfile models.RiskTier            `json:"risk_profile"`
	Allocation  []models.AllocationSegment `json:"allocation"`
	Instruments []string                   `json:"instrument_ids"`
	AnnualRate  float64                    `json:"annual_rate"`
}

// Allocation returns the policy for tier, with the moderate fallback applied
func (s *Service) Allocation(tier string) AllocationView {
	t := models.RiskTier(strings.ToLower(tier))
	return AllocationView{
		Requested:   tier,
		RiskProfile: t.Resolve(),
		Allocation:  s.policy.Allocation(t),
		Instruments: s.policy.InstrumentIDs(t),
		AnnualRate:  s.policy.AnnualRate(t),
	}
}

// Tabs lists topic categories with their topics
func (s *Service) Tabs() []education.Tab {
	return s.library.Tabs()
}

// Topics lists the topics of a category, or all of them for an empty category
func (s *Service) Topics(category string) []models.Topic {
	return s.library.ByCategory(category)
}

// Topic returns one topic
func (s *Service) Topic(id string) (models.Topic, error) {
	return s.library.Topic(id)
}

// RenderTopic renders a topic as markdown or HTML
func (s *Service) RenderTopic(id string, simple, html bool) (string, error) {
	t, err := s.library.Topic(id)
	if err != nil {
		return "", err
	}
	if html {
		return s.library.HTML(t, simple)
	}
	return s.library.Markdown(t, simple), nil
}

// ExpireSessions removes sessions past their expiry
func (s *Service) ExpireSessions(ctx context.Context) (int, error) {
	n, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	if n > 0 {
		s.log.Infof("Expired %d wizard sessions", n)
	}
	return n, nil
}
