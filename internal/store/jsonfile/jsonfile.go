// Package jsonfile persists the whole application state as a single JSON
// document on disk. It is the zero-infrastructure backend: every call
// re-reads the file, mutates the document, and writes it back under one
// process-wide mutex.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
)

// compile-time check that *Store satisfies the backend contract
var _ store.Store = (*Store)(nil)

// document is the on-disk shape: a users array plus a userID-keyed map of
// game lists.
type document struct {
	Users     []models.UserRecord          `json:"users"`
	GameLists map[string]*models.GameState `json:"gameLists"`
}

type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the document at path. The file is created
// with an empty document if it does not exist yet.
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := &document{Users: []models.UserRecord{}, GameLists: map[string]*models.GameState{}}
		if err := s.write(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: reading %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Empty or corrupt file: start over with a fresh document, the same
		// way the app would on first run.
		doc = document{Users: []models.UserRecord{}, GameLists: map[string]*models.GameState{}}
		if err := s.write(&doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	if doc.Users == nil {
		doc.Users = []models.UserRecord{}
	}
	if doc.GameLists == nil {
		doc.GameLists = map[string]*models.GameState{}
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encoding document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile: writing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	if rec := findByUsername(doc, username); rec != nil {
		out := *rec
		return &out, nil
	}
	return nil, store.ErrUserNotFound
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			u := doc.Users[i].User
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	if findByUsername(doc, username) != nil {
		return nil, store.ErrDuplicateUsername
	}

	rec := models.UserRecord{
		User: models.User{
			ID:               uuid.NewString(),
			Username:         username,
			ProfilePicture:   "",
			Description:      "",
			IsPublic:         true,
			Schedule:         []models.ScheduleBlock{},
			FavoritePlatform: models.PlatformNone,
		},
		PasswordHash: passwordHash,
	}
	doc.Users = append(doc.Users, rec)
	doc.GameLists[rec.ID] = models.NewGameState()

	if err := s.write(doc); err != nil {
		return nil, err
	}
	u := rec.User
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, changes models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	var rec *models.UserRecord
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			rec = &doc.Users[i]
			break
		}
	}
	if rec == nil {
		return nil, store.ErrUserNotFound
	}

	if changes.Username != nil {
		if other := findByUsername(doc, *changes.Username); other != nil && other.ID != id {
			return nil, store.ErrDuplicateUsername
		}
		rec.Username = *changes.Username
	}
	if changes.ProfilePicture != nil {
		rec.ProfilePicture = *changes.ProfilePicture
	}
	if changes.Description != nil {
		rec.Description = *changes.Description
	}
	if changes.IsPublic != nil {
		rec.IsPublic = *changes.IsPublic
	}
	if changes.Schedule != nil {
		rec.Schedule = *changes.Schedule
	}
	if changes.FavoritePlatform != nil {
		rec.FavoritePlatform = *changes.FavoritePlatform
	}
	if changes.PasswordHash != nil {
		rec.PasswordHash = *changes.PasswordHash
	}

	if err := s.write(doc); err != nil {
		return nil, err
	}
	u := rec.User
	return &u, nil
}

func (s *Store) ListPublicUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	for i := range doc.Users {
		if doc.Users[i].IsPublic {
			users = append(users, doc.Users[i].User)
		}
	}
	return users, nil
}

func (s *Store) LoadGameState(ctx context.Context, userID string) (*models.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	state, ok := doc.GameLists[userID]
	if !ok {
		return models.NewGameState(), nil
	}
	out := *state
	out.Normalize()
	return &out, nil
}

func (s *Store) SaveGameState(ctx context.Context, userID string, state *models.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	snapshot := *state
	snapshot.Normalize()
	doc.GameLists[userID] = &snapshot
	return s.write(doc)
}

func (s *Store) Close() error {
	return nil
}

func findByUsername(doc *document, username string) *models.UserRecord {
	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Username, username) {
			return &doc.Users[i]
		}
	}
	return nil
}
