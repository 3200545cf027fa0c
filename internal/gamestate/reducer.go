// Package gamestate holds the list-management state machine: a pure reducer
// over the five per-user game lists, plus a command handler that persists
// every accepted transition.
//
// Core invariant: a game id appears in at most one of the four curated lists
// (playing, completed, dropped, wishlist). The recommendations list is a
// cache and is exempt.
package gamestate

import "gametracker/backend/internal/models"

type ActionType string

const (
	ActionAdd                ActionType = "add"
	ActionRemove             ActionType = "remove"
	ActionMove               ActionType = "move"
	ActionUpdate             ActionType = "update"
	ActionSetRecommendations ActionType = "set_recommendations"
	ActionSetState           ActionType = "set_state"
)

// Action is one user-initiated change. Which fields matter depends on Type:
// Add/Update use Game and List, Remove uses GameID and List, Move uses Game,
// From and To, SetRecommendations uses Games, SetState uses State.
type Action struct {
	Type   ActionType
	Game   models.Game
	GameID int
	List   models.ListName
	From   models.ListName
	To     models.ListName
	Games  []models.Game
	State  *models.GameState
}

// Apply is the pure transition function. It never mutates state; the second
// return value reports whether the transition was accepted (rejected
// duplicates and absent removals are silent no-ops, by contract).
func Apply(state models.GameState, action Action) (models.GameState, bool) {
	switch action.Type {
	case ActionAdd:
		if !action.List.Curated() {
			return state, false
		}
		// Idempotent duplicate guard: a game already on any curated list is
		// ignored, never an error.
		if state.InCuratedList(action.Game.ID) {
			return state, false
		}
		next := state
		next.SetList(action.List, appendGame(state.List(action.List), action.Game))
		return next, true

	case ActionRemove:
		list := state.List(action.List)
		filtered, removed := removeGame(list, action.GameID)
		if !removed {
			return state, false
		}
		next := state
		next.SetList(action.List, filtered)
		return next, true

	case ActionMove:
		next := state
		from, _ := removeGame(state.List(action.From), action.Game.ID)
		next.SetList(action.From, from)
		// Already in the target list: treat as already moved, only the
		// removal applies. Keeps the move free of duplicates.
		if !contains(state.List(action.To), action.Game.ID) {
			next.SetList(action.To, appendGame(state.List(action.To), action.Game))
		}
		return next, true

	case ActionUpdate:
		list := state.List(action.List)
		replaced := false
		out := make([]models.Game, len(list))
		for i, g := range list {
			if g.ID == action.Game.ID {
				out[i] = action.Game
				replaced = true
			} else {
				out[i] = g
			}
		}
		if !replaced {
			return state, false
		}
		next := state
		next.SetList(action.List, out)
		return next, true

	case ActionSetRecommendations:
		next := state
		games := action.Games
		if games == nil {
			games = []models.Game{}
		}
		next.Recommendations = games
		return next, true

	case ActionSetState:
		next := models.GameState{}
		if action.State != nil {
			next = *action.State
		}
		next.Normalize()
		return next, true
	}
	return state, false
}

func appendGame(list []models.Game, g models.Game) []models.Game {
	out := make([]models.Game, 0, len(list)+1)
	out = append(out, list...)
	return append(out, g)
}

func removeGame(list []models.Game, id int) ([]models.Game, bool) {
	out := make([]models.Game, 0, len(list))
	removed := false
	for _, g := range list {
		if g.ID == id {
			removed = true
			continue
		}
		out = append(out, g)
	}
	return out, removed
}

func contains(list []models.Game, id int) bool {
	for _, g := range list {
		if g.ID == id {
			return true
		}
	}
	return false
}
