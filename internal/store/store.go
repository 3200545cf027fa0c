// Package store defines the persistence contract shared by all storage
// backends. A backend is selected once at process startup and injected;
// callers never touch a concrete implementation.
package store

import (
	"context"
	"errors"

	"gametracker/backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

// Store is the capability set every backend must provide: a flat JSON
// document, embedded sqlite, or a remote Postgres all satisfy it.
//
// SaveGameState has full-overwrite semantics: each call writes a complete
// five-list snapshot, not a diff. Two concurrent saves for the same user race
// by last-write-wins; the design assumes at most one active session mutates a
// given user's state at a time.
type Store interface {
	// FindUserByUsername matches case-insensitively and returns the record
	// including the password hash; it backs both login and uniqueness checks.
	FindUserByUsername(ctx context.Context, username string) (*models.UserRecord, error)

	// FindUserByID returns the sanitized user.
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateUser persists a new user plus five empty list rows and returns
	// the sanitized user. The two-step write needs no rollback: a user with
	// missing list rows is recoverable because LoadGameState defaults
	// missing lists to empty.
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)

	// UpdateUser applies only the non-nil fields. A username change re-checks
	// uniqueness excluding the user itself.
	UpdateUser(ctx context.Context, id string, changes models.UserUpdate) (*models.User, error)

	// ListPublicUsers returns every user whose profile is public, sanitized.
	ListPublicUsers(ctx context.Context) ([]models.User, error)

	// LoadGameState returns all five lists, defaulting any missing list to
	// an empty sequence.
	LoadGameState(ctx context.Context, userID string) (*models.GameState, error)

	// SaveGameState replaces all five lists wholesale.
	SaveGameState(ctx context.Context, userID string, state *models.GameState) error

	Close() error
}
