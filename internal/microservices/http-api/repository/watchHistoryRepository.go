package repository

import (
	"context"
	"fmt"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type WatchHistoryRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.WatchHistory, error)
	Create(ctx context.Context, history *models.WatchHistory) error
	Save(ctx context.Context, history *models.WatchHistory) error
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// FindByUser loads the user's single history record with its entries
// ordered oldest first.
func (r *watchHistoryRepository) FindByUser(ctx context.Context, userID string) (*models.WatchHistory, error) {
	var history models.WatchHistory
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("user_id = ?", userID).
		First(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *watchHistoryRepository) Create(ctx context.Context, history *models.WatchHistory) error {
	if err := r.db.WithContext(ctx).Create(history).Error; err != nil {
		return fmt.Errorf("create watch history: %w", err)
	}
	return nil
}

// Save persists the record and replaces its entries so positions stay
// consistent after appends, evictions and removals.
func (r *watchHistoryRepository) Save(ctx context.Context, history *models.WatchHistory) error {
	tx := r.db.WithContext(ctx).Begin()

	if err := tx.Save(&models.WatchHistory{
		ID:        history.ID,
		UserID:    history.UserID,
		CreatedAt: history.CreatedAt,
	}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("save watch history: %w", err)
	}

	if err := tx.Where("history_id = ?", history.ID).Delete(&models.WatchHistoryEntry{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clear history entries: %w", err)
	}

	for i := range history.Entries {
		history.Entries[i].ID = 0
		history.Entries[i].HistoryID = history.ID
	}
	if len(history.Entries) > 0 {
		if err := tx.Create(&history.Entries).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("save history entries: %w", err)
		}
	}

	return tx.Commit().Error
}
