package gormstore_test

import (
	"context"
	"errors"
	"testing"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
	"gametracker/backend/internal/testhelpers"
)

func TestCreateUserAndFind(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !user.IsPublic || user.FavoritePlatform != models.PlatformNone {
		t.Fatalf("unexpected defaults: %+v", user)
	}

	rec, err := s.FindUserByUsername(ctx, "ALICE")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if rec.PasswordHash != "hash" {
		t.Fatalf("expected password hash on record")
	}

	found, err := s.FindUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if found.Username != "alice" {
		t.Fatalf("expected alice, got %s", found.Username)
	}
}

func TestCreateUserDuplicateCaseInsensitive(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "abc", "hash"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := s.CreateUser(ctx, "ABC", "hash"); !errors.Is(err, store.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCreateUserInitializesLists(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	state, err := s.LoadGameState(ctx, user.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for _, name := range models.CuratedLists {
		if state.List(name) == nil {
			t.Fatalf("list %s not initialized", name)
		}
	}
	if state.Recommendations == nil {
		t.Fatalf("recommendations not initialized")
	}
}

func TestUpdateUserPartial(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	desc := "speedrunner"
	schedule := []models.ScheduleBlock{{ID: "b1", Day: "Monday", Start: "18:00", End: "20:00"}}
	updated, err := s.UpdateUser(ctx, user.ID, models.UserUpdate{
		Description: &desc,
		Schedule:    &schedule,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != desc {
		t.Fatalf("description not applied: %+v", updated)
	}
	if len(updated.Schedule) != 1 || updated.Schedule[0].Day != "Monday" {
		t.Fatalf("schedule not applied: %+v", updated.Schedule)
	}
	if updated.Username != "alice" {
		t.Fatalf("untouched fields must be preserved")
	}

	// survives a reload
	reloaded, err := s.FindUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(reloaded.Schedule) != 1 {
		t.Fatalf("schedule not persisted: %+v", reloaded.Schedule)
	}
}

func TestUpdateUserUsernameConflict(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alice", "hash"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	bob, err := s.CreateUser(ctx, "bob", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	taken := "ALICE"
	if _, err := s.UpdateUser(ctx, bob.ID, models.UserUpdate{Username: &taken}); !errors.Is(err, store.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestListPublicUsersExcludesPrivate(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alice", "hash"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	bob, err := s.CreateUser(ctx, "bob", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	private := false
	if _, err := s.UpdateUser(ctx, bob.ID, models.UserUpdate{IsPublic: &private}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	users, err := s.ListPublicUsers(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("expected only alice, got %+v", users)
	}
}

func TestGameStateRoundTrip(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	state := models.NewGameState()
	state.Playing = []models.Game{{ID: 1, Name: "Hades", Playtime: 20}, {ID: 2, Name: "Celeste"}}
	state.Recommendations = []models.Game{{ID: 9, Name: "Tunic"}}

	if err := s.SaveGameState(ctx, user.ID, state); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.LoadGameState(ctx, user.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Playing) != 2 || loaded.Playing[0].Name != "Hades" || loaded.Playing[1].Name != "Celeste" {
		t.Fatalf("playing list order lost: %+v", loaded.Playing)
	}
	if loaded.Playing[0].Playtime != 20 {
		t.Fatalf("game fields lost: %+v", loaded.Playing[0])
	}
	if len(loaded.Recommendations) != 1 {
		t.Fatalf("recommendations lost: %+v", loaded.Recommendations)
	}
}

func TestSaveIsFullOverwrite(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first := models.NewGameState()
	first.Playing = []models.Game{{ID: 1, Name: "Hades"}}
	if err := s.SaveGameState(ctx, user.ID, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := models.NewGameState()
	second.Completed = []models.Game{{ID: 1, Name: "Hades"}}
	if err := s.SaveGameState(ctx, user.ID, second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.LoadGameState(ctx, user.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Playing) != 0 || len(loaded.Completed) != 1 {
		t.Fatalf("expected second snapshot to win, got %+v", loaded)
	}
}

func TestLoadGameStateUnknownUserDefaultsEmpty(t *testing.T) {
	s := testhelpers.SetupTestStore(t)

	state, err := s.LoadGameState(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if state.Playing == nil || len(state.Playing) != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
}

func TestStorageErrorsSurface(t *testing.T) {
	s := testhelpers.SetupTestStore(t)
	testhelpers.DropUsersTable(t, s)

	if _, err := s.CreateUser(context.Background(), "alice", "hash"); err == nil {
		t.Fatalf("expected error after dropping users table")
	}
}
