package gamestate

import (
	"testing"

	"gametracker/backend/internal/models"
)

func game(id int, name string) models.Game {
	return models.Game{ID: id, Name: name}
}

func TestApplyAdd(t *testing.T) {
	t.Run("adds to curated list", func(t *testing.T) {
		state := *models.NewGameState()

		next, changed := Apply(state, Action{Type: ActionAdd, Game: game(1, "Hades"), List: models.ListPlaying})
		if !changed {
			t.Fatalf("expected transition to be accepted")
		}
		if len(next.Playing) != 1 || next.Playing[0].Name != "Hades" {
			t.Fatalf("expected Hades in playing, got %+v", next.Playing)
		}
	})

	t.Run("duplicate in same list is a no-op", func(t *testing.T) {
		state := *models.NewGameState()
		state.Playing = []models.Game{game(1, "Hades")}

		next, changed := Apply(state, Action{Type: ActionAdd, Game: game(1, "Hades"), List: models.ListPlaying})
		if changed {
			t.Fatalf("expected no-op, got changed state %+v", next)
		}
		if len(next.Playing) != 1 {
			t.Fatalf("expected playing unchanged, got %d entries", len(next.Playing))
		}
	})

	t.Run("duplicate in another curated list is a no-op", func(t *testing.T) {
		state := *models.NewGameState()
		state.Completed = []models.Game{game(1, "Hades")}

		_, changed := Apply(state, Action{Type: ActionAdd, Game: game(1, "Hades"), List: models.ListWishlist})
		if changed {
			t.Fatalf("expected no-op: game already in completed")
		}
	})

	t.Run("presence in recommendations does not block adds", func(t *testing.T) {
		state := *models.NewGameState()
		state.Recommendations = []models.Game{game(1, "Hades")}

		next, changed := Apply(state, Action{Type: ActionAdd, Game: game(1, "Hades"), List: models.ListWishlist})
		if !changed {
			t.Fatalf("expected add to succeed, recommendations are exempt")
		}
		if len(next.Wishlist) != 1 || len(next.Recommendations) != 1 {
			t.Fatalf("expected game in wishlist and still in recommendations")
		}
	})

	t.Run("rejects non-curated target", func(t *testing.T) {
		state := *models.NewGameState()

		_, changed := Apply(state, Action{Type: ActionAdd, Game: game(1, "Hades"), List: models.ListRecommendations})
		if changed {
			t.Fatalf("adds must target a curated list")
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		state := *models.NewGameState()
		next, _ := Apply(state, Action{Type: ActionAdd, Game: game(1, "Hades"), List: models.ListPlaying})
		next, _ = Apply(next, Action{Type: ActionAdd, Game: game(2, "Celeste"), List: models.ListPlaying})
		next, _ = Apply(next, Action{Type: ActionAdd, Game: game(3, "Tunic"), List: models.ListPlaying})

		want := []string{"Hades", "Celeste", "Tunic"}
		for i, name := range want {
			if next.Playing[i].Name != name {
				t.Fatalf("position %d: want %s, got %s", i, name, next.Playing[i].Name)
			}
		}
	})
}

func TestApplyRemove(t *testing.T) {
	t.Run("removes present game", func(t *testing.T) {
		state := *models.NewGameState()
		state.Dropped = []models.Game{game(1, "Hades"), game(2, "Celeste")}

		next, changed := Apply(state, Action{Type: ActionRemove, GameID: 1, List: models.ListDropped})
		if !changed {
			t.Fatalf("expected removal to be accepted")
		}
		if len(next.Dropped) != 1 || next.Dropped[0].ID != 2 {
			t.Fatalf("expected only Celeste left, got %+v", next.Dropped)
		}
	})

	t.Run("absent game is a no-op", func(t *testing.T) {
		state := *models.NewGameState()
		state.Dropped = []models.Game{game(2, "Celeste")}

		_, changed := Apply(state, Action{Type: ActionRemove, GameID: 99, List: models.ListDropped})
		if changed {
			t.Fatalf("expected no-op for absent game")
		}
	})

	t.Run("removes from recommendations", func(t *testing.T) {
		state := *models.NewGameState()
		state.Recommendations = []models.Game{game(1, "Hades")}

		next, changed := Apply(state, Action{Type: ActionRemove, GameID: 1, List: models.ListRecommendations})
		if !changed || len(next.Recommendations) != 0 {
			t.Fatalf("expected removal from recommendations")
		}
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("moves between curated lists", func(t *testing.T) {
		state := *models.NewGameState()
		state.Playing = []models.Game{game(1, "Hades")}

		next, changed := Apply(state, Action{Type: ActionMove, Game: game(1, "Hades"), From: models.ListPlaying, To: models.ListCompleted})
		if !changed {
			t.Fatalf("expected move to be accepted")
		}
		if len(next.Playing) != 0 {
			t.Fatalf("expected playing emptied, got %+v", next.Playing)
		}
		if len(next.Completed) != 1 || next.Completed[0].ID != 1 {
			t.Fatalf("expected Hades in completed, got %+v", next.Completed)
		}
	})

	t.Run("target already contains game: removal only", func(t *testing.T) {
		state := *models.NewGameState()
		state.Playing = []models.Game{game(1, "Hades")}
		state.Completed = []models.Game{game(1, "Hades")}

		next, changed := Apply(state, Action{Type: ActionMove, Game: game(1, "Hades"), From: models.ListPlaying, To: models.ListCompleted})
		if !changed {
			t.Fatalf("expected transition to be accepted")
		}
		if len(next.Playing) != 0 {
			t.Fatalf("expected removal from source")
		}
		if len(next.Completed) != 1 {
			t.Fatalf("expected no duplicate in target, got %+v", next.Completed)
		}
	})

	t.Run("is atomic: no intermediate state visible", func(t *testing.T) {
		state := *models.NewGameState()
		state.Wishlist = []models.Game{game(1, "Hades"), game(2, "Celeste")}

		next, _ := Apply(state, Action{Type: ActionMove, Game: game(1, "Hades"), From: models.ListWishlist, To: models.ListPlaying})

		total := len(next.Playing) + len(next.Completed) + len(next.Dropped) + len(next.Wishlist)
		if total != 2 {
			t.Fatalf("game count changed during move: %d", total)
		}
		if !next.InCuratedList(1) {
			t.Fatalf("moved game vanished")
		}
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("replaces matching entry in place", func(t *testing.T) {
		state := *models.NewGameState()
		state.Playing = []models.Game{game(1, "Hades"), game(2, "Celeste")}

		updated := models.Game{ID: 2, Name: "Celeste", Playtime: 12}
		next, changed := Apply(state, Action{Type: ActionUpdate, Game: updated, List: models.ListPlaying})
		if !changed {
			t.Fatalf("expected update to be accepted")
		}
		if next.Playing[1].Playtime != 12 {
			t.Fatalf("expected playtime updated, got %+v", next.Playing[1])
		}
		if next.Playing[0].ID != 1 {
			t.Fatalf("expected order preserved")
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		state := *models.NewGameState()
		state.Playing = []models.Game{game(1, "Hades")}

		_, changed := Apply(state, Action{Type: ActionUpdate, Game: game(99, "Ghost"), List: models.ListPlaying})
		if changed {
			t.Fatalf("expected no-op for unknown id")
		}
	})
}

func TestApplySetRecommendations(t *testing.T) {
	t.Run("replaces the list wholesale", func(t *testing.T) {
		state := *models.NewGameState()
		state.Recommendations = []models.Game{game(1, "Old")}

		next, changed := Apply(state, Action{Type: ActionSetRecommendations, Games: []models.Game{game(2, "New"), game(3, "Newer")}})
		if !changed {
			t.Fatalf("expected transition to be accepted")
		}
		if len(next.Recommendations) != 2 || next.Recommendations[0].ID != 2 {
			t.Fatalf("expected wholesale replacement, got %+v", next.Recommendations)
		}
	})

	t.Run("nil clears to empty list", func(t *testing.T) {
		state := *models.NewGameState()
		state.Recommendations = []models.Game{game(1, "Old")}

		next, _ := Apply(state, Action{Type: ActionSetRecommendations, Games: nil})
		if next.Recommendations == nil || len(next.Recommendations) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", next.Recommendations)
		}
	})
}

func TestApplySetState(t *testing.T) {
	t.Run("nil lists normalize to empty", func(t *testing.T) {
		loaded := &models.GameState{Playing: []models.Game{game(1, "Hades")}}

		next, changed := Apply(*models.NewGameState(), Action{Type: ActionSetState, State: loaded})
		if !changed {
			t.Fatalf("expected transition to be accepted")
		}
		if next.Completed == nil || next.Wishlist == nil || next.Recommendations == nil {
			t.Fatalf("expected all lists normalized, got %+v", next)
		}
		if len(next.Playing) != 1 {
			t.Fatalf("expected loaded playing list kept")
		}
	})

	t.Run("nil state yields fresh empty state", func(t *testing.T) {
		next, _ := Apply(*models.NewGameState(), Action{Type: ActionSetState, State: nil})
		if next.Playing == nil || len(next.Playing) != 0 {
			t.Fatalf("expected fresh empty state, got %+v", next)
		}
	})
}

func TestApplyUnknownAction(t *testing.T) {
	state := *models.NewGameState()
	_, changed := Apply(state, Action{Type: ActionType("bogus")})
	if changed {
		t.Fatalf("unknown action must be rejected")
	}
}
