package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/store"
)

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	var row userRow
	err := s.DB.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToRecord(&row)
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var row userRow
	err := s.DB.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToUser(&row)
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	if _, err := s.FindUserByUsername(ctx, username); err == nil {
		return nil, store.ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	row := userRow{
		ID:               uuid.NewString(),
		Username:         username,
		PasswordHash:     passwordHash,
		IsPublic:         true,
		FavoritePlatform: string(models.PlatformNone),
		Schedule:         "[]",
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, list := range allLists {
			if err := tx.Omit(clause.Associations).Create(&gameListRow{UserID: row.ID, ListType: string(list), GameData: "[]"}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rowToUser(&row)
}

func (s *Store) UpdateUser(ctx context.Context, id string, changes models.UserUpdate) (*models.User, error) {
	var row userRow
	err := s.DB.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if changes.Username != nil {
		var count int64
		err := s.DB.WithContext(ctx).Model(&userRow{}).
			Where("LOWER(username) = LOWER(?) AND id <> ?", *changes.Username, id).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, store.ErrDuplicateUsername
		}
		updates["username"] = *changes.Username
	}
	if changes.ProfilePicture != nil {
		updates["profile_picture"] = *changes.ProfilePicture
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.IsPublic != nil {
		updates["is_public"] = *changes.IsPublic
	}
	if changes.FavoritePlatform != nil {
		updates["favorite_platform"] = string(*changes.FavoritePlatform)
	}
	if changes.Schedule != nil {
		data, err := json.Marshal(*changes.Schedule)
		if err != nil {
			return nil, fmt.Errorf("gormstore: encoding schedule: %w", err)
		}
		updates["schedule"] = string(data)
	}
	if changes.PasswordHash != nil {
		updates["password_hash"] = *changes.PasswordHash
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
			return nil, err
		}
		// map updates do not write back into the struct
		if err := s.DB.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	return rowToUser(&row)
}

func (s *Store) ListPublicUsers(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	if err := s.DB.WithContext(ctx).Where("is_public = ?", true).Find(&rows).Error; err != nil {
		return nil, err
	}
	users := []models.User{}
	for i := range rows {
		u, err := rowToUser(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func rowToUser(row *userRow) (*models.User, error) {
	var schedule []models.ScheduleBlock
	raw := row.Schedule
	if raw == "" {
		raw = "[]"
	}
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return nil, fmt.Errorf("gormstore: decoding schedule for user %s: %w", row.ID, err)
	}
	if schedule == nil {
		schedule = []models.ScheduleBlock{}
	}
	return &models.User{
		ID:               row.ID,
		Username:         row.Username,
		ProfilePicture:   row.ProfilePicture,
		Description:      row.Description,
		IsPublic:         row.IsPublic,
		Schedule:         schedule,
		FavoritePlatform: models.Platform(row.FavoritePlatform),
	}, nil
}

func rowToRecord(row *userRow) (*models.UserRecord, error) {
	u, err := rowToUser(row)
	if err != nil {
		return nil, err
	}
	return &models.UserRecord{User: *u, PasswordHash: row.PasswordHash}, nil
}
