// Package suggest orchestrates the AI flows: it gathers the user's lists,
// builds a prompt, calls the generation provider, and resolves suggested
// titles into full catalog records.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"gametracker/backend/internal/catalog"
	"gametracker/backend/internal/llm"
	"gametracker/backend/internal/models"
	"gametracker/backend/internal/prompts"
	"gametracker/backend/internal/store"
)

var (
	// ErrNoGames means the flow's qualifying lists are empty; the generation
	// service is never invoked in that case.
	ErrNoGames = errors.New("not enough games in lists to suggest from")

	// ErrGameNotResolved means the generation service suggested a title with
	// no catalog match. No partial result is surfaced.
	ErrGameNotResolved = errors.New("suggested game not found in catalog")

	// ErrNoPlaytimeData means the catalog has no average playtime for the
	// requested game, so a prediction cannot be made.
	ErrNoPlaytimeData = errors.New("no playtime data available for game")
)

// Catalog is the slice of the catalog client the orchestrator needs.
type Catalog interface {
	Search(ctx context.Context, query string, page int) (*catalog.SearchResult, error)
}

type Service struct {
	store    store.Store
	catalog  Catalog
	provider llm.Provider
	prompts  prompts.Builder
	logger   *zap.Logger
}

func NewService(st store.Store, cat Catalog, provider llm.Provider, builder prompts.Builder, logger *zap.Logger) *Service {
	return &Service{
		store:    st,
		catalog:  cat,
		provider: provider,
		prompts:  builder,
		logger:   logger,
	}
}

// Dynamic suggests one game to play right now given the time of day and an
// optional free-text mood. Requires at least one non-empty curated list.
func (s *Service) Dynamic(ctx context.Context, userID, timeOfDay, userContext string) (*models.ResolvedSuggestion, error) {
	user, state, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !anyCurated(state) {
		return nil, ErrNoGames
	}

	data := listData(state)
	data["TimeOfDay"] = timeOfDay
	data["UserContext"] = userContext
	data["FavoritePlatform"] = string(user.FavoritePlatform)

	var out models.DynamicSuggestion
	if err := s.generate(ctx, prompts.FlowDynamicSuggestion, data, &out); err != nil {
		return nil, err
	}
	if out.GameName == "" {
		return nil, ErrGameNotResolved
	}

	game, err := s.resolve(ctx, out.GameName)
	if err != nil {
		return nil, err
	}
	return &models.ResolvedSuggestion{Game: *game, Reasoning: out.Reasoning}, nil
}

// Panic gives one decisive suggestion with a micro-task. Requires a
// non-empty playing list.
func (s *Service) Panic(ctx context.Context, userID string) (*models.ResolvedPanicSuggestion, error) {
	state, err := s.store.LoadGameState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(state.Playing) == 0 {
		return nil, ErrNoGames
	}

	data := map[string]string{
		"PlayingGames": prompts.FormatList(state.Names(models.ListPlaying)),
	}
	var out models.PanicSuggestion
	if err := s.generate(ctx, prompts.FlowPanicButton, data, &out); err != nil {
		return nil, err
	}
	if out.GameName == "" {
		return nil, ErrGameNotResolved
	}

	game, err := s.resolve(ctx, out.GameName)
	if err != nil {
		return nil, err
	}
	return &models.ResolvedPanicSuggestion{Game: *game, MicroTask: out.MicroTask}, nil
}

// Recommendations produces the personalized batch: twelve titles resolved
// against the catalog, keeping the ones that resolve. Requires at least one
// non-empty curated list.
func (s *Service) Recommendations(ctx context.Context, userID string) ([]models.Game, error) {
	user, state, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !anyCurated(state) {
		return nil, ErrNoGames
	}

	data := listData(state)
	data["FavoritePlatform"] = string(user.FavoritePlatform)

	var out models.RecommendationList
	if err := s.generate(ctx, prompts.FlowRecommendations, data, &out); err != nil {
		return nil, err
	}

	games := []models.Game{}
	for _, name := range out.Recommendations {
		result, err := s.catalog.Search(ctx, name, 1)
		if err != nil {
			return nil, err
		}
		if len(result.Games) == 0 {
			s.logger.Debug("recommended title not in catalog, skipping", zap.String("name", name))
			continue
		}
		games = append(games, result.Games[0])
	}
	return games, nil
}

// DNA builds the user's gamer DNA profile from the four curated lists.
func (s *Service) DNA(ctx context.Context, userID string) (*models.GamerDNA, error) {
	_, state, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !anyCurated(state) {
		return nil, ErrNoGames
	}

	var out models.GamerDNA
	if err := s.generate(ctx, prompts.FlowGamerDNA, listData(state), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Duel compares the caller's DNA with a public opponent's.
func (s *Service) Duel(ctx context.Context, userID, opponentID string) (*models.GamerDuel, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	opponent, err := s.store.FindUserByID(ctx, opponentID)
	if err != nil {
		return nil, err
	}
	if !opponent.IsPublic {
		return nil, store.ErrUserNotFound
	}

	dna1, err := s.DNA(ctx, userID)
	if err != nil {
		return nil, err
	}
	dna2, err := s.DNA(ctx, opponentID)
	if err != nil {
		return nil, err
	}

	data := map[string]string{
		"User1Name":      user.Username,
		"User1Summary":   dna1.Summary,
		"User1Genres":    formatGenres(dna1.TopGenres),
		"User1Mechanics": prompts.FormatList(dna1.CommonMechanics),
		"User1Styles":    prompts.FormatList(dna1.ArtisticStyles),
		"User2Name":      opponent.Username,
		"User2Summary":   dna2.Summary,
		"User2Genres":    formatGenres(dna2.TopGenres),
		"User2Mechanics": prompts.FormatList(dna2.CommonMechanics),
		"User2Styles":    prompts.FormatList(dna2.ArtisticStyles),
	}
	var out models.GamerDuel
	if err := s.generate(ctx, prompts.FlowGamerDuel, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Playtime predicts how long the user will take to finish the named game,
// grounded on the catalog's average playtime and the user's schedule.
func (s *Service) Playtime(ctx context.Context, userID, gameName string) (string, error) {
	user, state, err := s.profile(ctx, userID)
	if err != nil {
		return "", err
	}

	game, err := s.resolve(ctx, gameName)
	if err != nil {
		return "", err
	}
	if game.Playtime <= 0 {
		return "", ErrNoPlaytimeData
	}

	data := map[string]string{
		"GameName":        game.Name,
		"AveragePlaytime": strconv.Itoa(game.Playtime),
		"CompletedGames":  prompts.FormatList(state.Names(models.ListCompleted)),
		"Schedule":        formatSchedule(user.Schedule),
	}
	var out models.PlaytimePrediction
	if err := s.generate(ctx, prompts.FlowPlaytimePrediction, data, &out); err != nil {
		return "", err
	}
	return out.Prediction, nil
}

// Difficulty analyzes the named game's difficulty relative to the user.
func (s *Service) Difficulty(ctx context.Context, userID, gameName string) (string, error) {
	state, err := s.store.LoadGameState(ctx, userID)
	if err != nil {
		return "", err
	}

	data := map[string]string{
		"GameName":       gameName,
		"CompletedGames": prompts.FormatList(state.Names(models.ListCompleted)),
		"DroppedGames":   prompts.FormatList(state.Names(models.ListDropped)),
	}
	var out models.DifficultyAnalysis
	if err := s.generate(ctx, prompts.FlowDifficultyAnalysis, data, &out); err != nil {
		return "", err
	}
	return out.Analysis, nil
}

// Dropped analyzes the user's abandoned games. Requires a non-empty dropped
// list.
func (s *Service) Dropped(ctx context.Context, userID string) (*models.DroppedAnalysis, error) {
	state, err := s.store.LoadGameState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(state.Dropped) == 0 {
		return nil, ErrNoGames
	}

	data := map[string]string{
		"DroppedGames": prompts.FormatList(state.Names(models.ListDropped)),
	}
	var out models.DroppedAnalysis
	if err := s.generate(ctx, prompts.FlowDroppedAnalysis, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) profile(ctx context.Context, userID string) (*models.User, *models.GameState, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	state, err := s.store.LoadGameState(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, state, nil
}

func (s *Service) generate(ctx context.Context, flow string, data map[string]string, out any) error {
	prompt, err := s.prompts.BuildPrompt(flow, data)
	if err != nil {
		return err
	}
	if err := s.provider.GenerateJSON(ctx, prompt, "", out); err != nil {
		s.logger.Error("generation provider error",
			zap.String("flow", flow),
			zap.String("provider", s.provider.GetProviderName()),
			zap.Error(err))
		return err
	}
	return nil
}

// resolve maps a suggested title to a full catalog record, first hit wins.
func (s *Service) resolve(ctx context.Context, name string) (*models.Game, error) {
	result, err := s.catalog.Search(ctx, name, 1)
	if err != nil {
		return nil, err
	}
	if len(result.Games) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGameNotResolved, name)
	}
	return &result.Games[0], nil
}

func anyCurated(state *models.GameState) bool {
	for _, name := range models.CuratedLists {
		if len(state.List(name)) > 0 {
			return true
		}
	}
	return false
}

func listData(state *models.GameState) map[string]string {
	return map[string]string{
		"PlayingGames":   prompts.FormatList(state.Names(models.ListPlaying)),
		"CompletedGames": prompts.FormatList(state.Names(models.ListCompleted)),
		"DroppedGames":   prompts.FormatList(state.Names(models.ListDropped)),
		"WishlistGames":  prompts.FormatList(state.Names(models.ListWishlist)),
	}
}

func formatGenres(genres []models.GenreShare) string {
	if len(genres) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(genres))
	for _, g := range genres {
		parts = append(parts, fmt.Sprintf("%s (%d%%)", g.Genre, g.Percentage))
	}
	return strings.Join(parts, ", ")
}

func formatSchedule(blocks []models.ScheduleBlock) string {
	if len(blocks) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, fmt.Sprintf("%s %s-%s", b.Day, b.Start, b.End))
	}
	return strings.Join(parts, "; ")
}
