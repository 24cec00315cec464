package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/finplan-service/internal/dashboard"
	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/report"
	"github.com/Dan9191/finplan-service/internal/repository"
	"github.com/Dan9191/finplan-service/internal/wizard"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionView is a wizard session with its render hints
type SessionView struct {
	ID            string                 `json:"id"`
	CurrentStep   int                    `json:"current_step"`
	StepName      string                 `json:"step_name"`
	TotalSteps    int                    `json:"total_steps"`
	Progress      float64                `json:"progress"`
	Encouragement wizard.Encouragement   `json:"encouragement"`
	Profile       models.UserProfile     `json:"profile"`
	Result        *models.PlanningResult `json:"result,omitempty"`
	ExpiresAt     time.Time              `json:"expires_at"`
}

// StepResult is the outcome of a wizard transition
type StepResult struct {
	Session    SessionView       `json:"session"`
	Transition wizard.Transition `json:"transition"`
}

func newSessionView(sess *models.Session) SessionView {
	step := sess.State.CurrentStep
	enc, _ := wizard.EncouragementFor(step)
	return SessionView{
		ID:            sess.ID,
		CurrentStep:   step,
		StepName:      wizard.StepName(step),
		TotalSteps:    wizard.TotalSteps,
		Progress:      wizard.Progress(step),
		Encouragement: enc,
		Profile:       sess.State.Profile,
		Result:        sess.State.Result,
		ExpiresAt:     sess.ExpiresAt,
	}
}

// StartSession creates a wizard session and a bearer token for it
func (s *Service) StartSession(ctx context.Context) (SessionView, string, error) {
	now := s.now().UTC()
	id := uuid.NewString()
	token, expiresAt, err := s.tokens.Sign(id, now)
	if err != nil {
		return SessionView{}, "", err
	}

	sess := &models.Session{
		ID:        id,
		State:     s.machine.Start(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return SessionView{}, "", fmt.Errorf("failed to start session: %w", err)
	}

	s.log.WithField("session_id", id).Info("Wizard session started")
	return newSessionView(sess), token, nil
}

// Session returns the current state of a session
func (s *Service) Session(ctx context.Context, id string) (SessionView, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	return newSessionView(sess), nil
}

// GoTo moves the session to step, submitting fields for the step being left
func (s *Service) GoTo(ctx context.Context, id string, step int, f wizard.Fields) (StepResult, error) {
	return s.apply(ctx, id, func(st models.WizardState) (models.WizardState, wizard.Transition) {
		return s.machine.GoTo(st, step, f)
	})
}

// Next advances the session by one step
func (s *Service) Next(ctx context.Context, id string, f wizard.Fields) (StepResult, error) {
	return s.apply(ctx, id, func(st models.WizardState) (models.WizardState, wizard.Transition) {
		return s.machine.Next(st, f)
	})
}

// Prev moves the session back one step
func (s *Service) Prev(ctx context.Context, id string, f wizard.Fields) (StepResult, error) {
	return s.apply(ctx, id, func(st models.WizardState) (models.WizardState, wizard.Transition) {
		return s.machine.Prev(st, f)
	})
}

// Restart resets the session to a fresh wizard
func (s *Service) Restart(ctx context.Context, id string) (StepResult, error) {
	return s.apply(ctx, id, func(st models.WizardState) (models.WizardState, wizard.Transition) {
		next := s.machine.Restart(st)
		enc, _ := wizard.EncouragementFor(next.CurrentStep)
		return next, wizard.Transition{
			From:          st.CurrentStep,
			To:            next.CurrentStep,
			Moved:         true,
			Progress:      wizard.Progress(next.CurrentStep),
			Encouragement: enc,
		}
	})
}

// EndSession deletes a session
func (s *Service) EndSession(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.log.WithField("session_id", id).Info("Wizard session ended")
	return nil
}

// SessionDashboard builds the results view of a completed session
func (s *Service) SessionDashboard(ctx context.Context, id string) (dashboard.Dashboard, error) {
	sess, err := s.completed(ctx, id)
	if err != nil {
		return dashboard.Dashboard{}, err
	}
	return dashboard.Build(sess.State.Profile, *sess.State.Result), nil
}

// AllocationChart renders the donut chart of a completed session
func (s *Service) AllocationChart(ctx context.Context, id string) ([]byte, error) {
	d, err := s.SessionDashboard(ctx, id)
	if err != nil {
		return nil, err
	}
	return dashboard.AllocationSVG(d.Slices)
}

// ProjectionChart renders the growth bar chart of a completed session
func (s *Service) ProjectionChart(ctx context.Context, id string) ([]byte, error) {
	d, err := s.SessionDashboard(ctx, id)
	if err != nil {
		return nil, err
	}
	return dashboard.ProjectionSVG(d.Bars)
}

// SessionReport renders the PDF blueprint of a completed session
func (s *Service) SessionReport(ctx context.Context, id string) ([]byte, error) {
	d, err := s.SessionDashboard(ctx, id)
	if err != nil {
		return nil, err
	}
	return report.Blueprint(d, s.now())
}

// EmailPlan sends the plan of a completed session to the given address
func (s *Service) EmailPlan(ctx context.Context, id, to string) error {
	if s.mailer == nil {
		return ErrMailerDisabled
	}
	d, err := s.SessionDashboard(ctx, id)
	if err != nil {
		return err
	}
	summary, err := dashboard.Markdown(d)
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	pdf, err := report.Blueprint(d, s.now())
	if err != nil {
		return err
	}
	if err := s.mailer.SendPlanSummary(to, d.Header.Name, summary, pdf); err != nil {
		return err
	}
	s.log.WithField("session_id", id).Info("Plan summary emailed")
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*models.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		return nil, fmt.Errorf("session %s expired: %w", id, ErrSessionNotFound)
	}
	return sess, nil
}

func (s *Service) completed(ctx context.Context, id string) (*models.Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.State.Result == nil {
		return nil, fmt.Errorf("session %s: %w", id, ErrPlanNotReady)
	}
	return sess, nil
}

// apply runs one load, transition, save cycle. Cycles on the same session are
// serialized in this process only; replicas sharing a Postgres or Redis store
// can still interleave, and the last save wins.
func (s *Service) apply(ctx context.Context, id string, step func(models.WizardState) (models.WizardState, wizard.Transition)) (StepResult, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return StepResult{}, err
	}

	// blocked moves still keep the submitted answers
	next, tr := step(sess.State)
	sess.State = next
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return StepResult{}, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"session_id": id,
		"from":       tr.From,
		"to":         tr.To,
		"blocked":    tr.Blocked,
	}).Debug("Wizard transition")
	return StepResult{Session: newSessionView(sess), Transition: tr}, nil
}
