package emotion

import (
	"context"
	"time"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

type (
	EmotionRepository interface {
		CreateEntry(ctx context.Context, entry *entities.EmotionEntry) error
		GetEntryByID(ctx context.Context, coupleID string, entryID string) (*entities.EmotionEntry, error)
		GetEntries(ctx context.Context, coupleID string) ([]entities.EmotionEntry, error)
		GetEntriesSince(ctx context.Context, coupleID string, since time.Time) ([]entities.EmotionEntry, error)
		DeleteEntry(ctx context.Context, coupleID string, entryID string) error
	}

	emotionRepository struct {
		db *gorm.DB
	}
)

func NewEmotionRepository(db *gorm.DB) EmotionRepository {
	return &emotionRepository{db: db}
}

func (r *emotionRepository) CreateEntry(ctx context.Context, entry *entities.EmotionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *emotionRepository) GetEntryByID(ctx context.Context, coupleID string, entryID string) (*entities.EmotionEntry, error) {
	var entry entities.EmotionEntry
	err := r.db.WithContext(ctx).
		First(&entry, "id = ? AND couple_id = ?", entryID, coupleID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *emotionRepository) GetEntries(ctx context.Context, coupleID string) ([]entities.EmotionEntry, error) {
	var entries []entities.EmotionEntry
	err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("occurred_at desc").
		Find(&entries).Error
	return entries, err
}

func (r *emotionRepository) GetEntriesSince(ctx context.Context, coupleID string, since time.Time) ([]entities.EmotionEntry, error) {
	var entries []entities.EmotionEntry
	err := r.db.WithContext(ctx).
		Where("couple_id = ? AND occurred_at >= ?", coupleID, since).
		Order("occurred_at asc").
		Find(&entries).Error
	return entries, err
}

func (r *emotionRepository) DeleteEntry(ctx context.Context, coupleID string, entryID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", entryID, coupleID).
		Delete(&entities.EmotionEntry{}).Error
}
