package gormstore

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm/clause"

	"gametracker/backend/internal/models"
)

var allLists = []models.ListName{
	models.ListPlaying, models.ListCompleted, models.ListDropped,
	models.ListWishlist, models.ListRecommendations,
}

func (s *Store) LoadGameState(ctx context.Context, userID string) (*models.GameState, error) {
	var rows []gameListRow
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	// Missing rows default to empty lists; a partially-initialized user is
	// indistinguishable from one with empty lists.
	state := models.NewGameState()
	for i := range rows {
		list := models.ListName(rows[i].ListType)
		if !list.Valid() {
			continue
		}
		var games []models.Game
		if err := json.Unmarshal([]byte(rows[i].GameData), &games); err != nil {
			return nil, fmt.Errorf("gormstore: decoding %s list for user %s: %w", list, userID, err)
		}
		if games == nil {
			games = []models.Game{}
		}
		state.SetList(list, games)
	}
	return state, nil
}

func (s *Store) SaveGameState(ctx context.Context, userID string, state *models.GameState) error {
	snapshot := *state
	snapshot.Normalize()

	// Wholesale snapshot write: upsert all five rows, last write wins.
	for _, list := range allLists {
		data, err := json.Marshal(snapshot.List(list))
		if err != nil {
			return fmt.Errorf("gormstore: encoding %s list: %w", list, err)
		}
		row := gameListRow{UserID: userID, ListType: string(list), GameData: string(data)}
		err = s.DB.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "list_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"game_data", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
