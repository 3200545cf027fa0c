// Package gormstore implements the storage contract on a relational
// database via GORM. The same schema runs on embedded SQLite and on a
// remote Postgres (Supabase); the dialector is the only difference.
package gormstore

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gametracker/backend/internal/store"
)

// compile-time check that *Store satisfies the backend contract
var _ store.Store = (*Store)(nil)

type userRow struct {
	ID               string `gorm:"primaryKey"`
	Username         string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	ProfilePicture   string
	Description      string
	IsPublic         bool   `gorm:"default:true"`
	FavoritePlatform string `gorm:"default:'None'"`
	Schedule         string `gorm:"not null;default:'[]'"` // JSON-encoded schedule blocks
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (userRow) TableName() string { return "users" }

type gameListRow struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    string  `gorm:"not null;uniqueIndex:idx_game_lists_user_list"`
	ListType  string  `gorm:"not null;uniqueIndex:idx_game_lists_user_list"`
	GameData  string  `gorm:"not null;default:'[]'"` // JSON-encoded game array
	User      userRow `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (gameListRow) TableName() string { return "game_lists" }

type Store struct {
	DB *gorm.DB
}

// OpenSQLite opens (or creates) an embedded SQLite database at path and runs
// migrations. ":memory:" style DSNs work too, which the tests rely on.
func OpenSQLite(path string) (*Store, error) {
	return open(sqlite.Open(path))
}

// OpenPostgres connects to a Postgres instance (a Supabase project exposes a
// plain Postgres DSN) and runs migrations.
func OpenPostgres(dsn string) (*Store, error) {
	return open(postgres.Open(dsn))
}

func open(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&userRow{}, &gameListRow{}); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
