package models

import "time"

// WizardState is the value threaded through wizard transitions
type WizardState struct {
	CurrentStep int             `json:"current_step"`
	Profile     UserProfile     `json:"profile"`
	Result      *PlanningResult `json:"result,omitempty"`
}

// Session represents a wizard run held by the server between requests
type Session struct {
	ID        string      `json:"id"`
	State     WizardState `json:"state"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
