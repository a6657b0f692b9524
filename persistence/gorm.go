package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted store blob. The substrate stays key-value even on
// Postgres: a single table, JSONB values, upsert on key.
type Snapshot struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// GormAdapter is the durable substrate option, selected with
// PERSISTENCE_DRIVER=postgres.
type GormAdapter struct {
	db *gorm.DB
}

func NewGormAdapter(db *gorm.DB) (*GormAdapter, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &GormAdapter{db: db}, nil
}

func (a *GormAdapter) Load(ctx context.Context, key string) ([]byte, error) {
	var snap Snapshot
	if err := a.db.WithContext(ctx).First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(snap.Value), nil
}

func (a *GormAdapter) Save(ctx context.Context, key string, value []byte) error {
	snap := Snapshot{Key: key, Value: datatypes.JSON(value)}
	return a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&snap).Error
}
