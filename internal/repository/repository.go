package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Dan9191/finplan-service/internal/models"
)

// ErrNotFound is returned when a session does not exist or has expired
var ErrNotFound = errors.New("session not found")

// SessionStore persists wizard sessions between requests
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions that expired before now and reports how many went
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
