package gamestate

import (
	"context"

	"go.uber.org/zap"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
)

// Service is the command handler in front of the reducer: it loads the
// user's state, applies one action, and persists the full snapshot whenever
// the transition was accepted. Loading state (the SetState analog) never
// writes back, so a load can't clobber the store with incomplete data.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// State returns the user's current snapshot without side effects.
func (s *Service) State(ctx context.Context, userID string) (*models.GameState, error) {
	return s.store.LoadGameState(ctx, userID)
}

func (s *Service) AddGame(ctx context.Context, userID string, game models.Game, list models.ListName) (*models.GameState, error) {
	return s.dispatch(ctx, userID, Action{Type: ActionAdd, Game: game, List: list})
}

func (s *Service) RemoveGame(ctx context.Context, userID string, gameID int, list models.ListName) (*models.GameState, error) {
	return s.dispatch(ctx, userID, Action{Type: ActionRemove, GameID: gameID, List: list})
}

// MoveGame is the one cross-list operation. Removal and insertion commit as
// a single transition: the intermediate state is never persisted.
func (s *Service) MoveGame(ctx context.Context, userID string, game models.Game, from, to models.ListName) (*models.GameState, error) {
	return s.dispatch(ctx, userID, Action{Type: ActionMove, Game: game, From: from, To: to})
}

func (s *Service) UpdateGame(ctx context.Context, userID string, game models.Game, list models.ListName) (*models.GameState, error) {
	return s.dispatch(ctx, userID, Action{Type: ActionUpdate, Game: game, List: list})
}

func (s *Service) SetRecommendations(ctx context.Context, userID string, games []models.Game) (*models.GameState, error) {
	return s.dispatch(ctx, userID, Action{Type: ActionSetRecommendations, Games: games})
}

func (s *Service) dispatch(ctx context.Context, userID string, action Action) (*models.GameState, error) {
	current, err := s.store.LoadGameState(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, changed := Apply(*current, action)
	if !changed {
		return current, nil
	}

	if err := s.store.SaveGameState(ctx, userID, &next); err != nil {
		return nil, err
	}
	s.logger.Debug("game state transition persisted",
		zap.String("user_id", userID),
		zap.String("action", string(action.Type)))
	return &next, nil
}
