package antiwaste

import (
	"context"
	"time"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateItem(ctx context.Context, item *entities.FoodItem) error
		GetItemByID(ctx context.Context, coupleID string, itemID string) (*entities.FoodItem, error)
		GetItems(ctx context.Context, coupleID string) ([]entities.FoodItem, error)
		GetItemsExpiringBefore(ctx context.Context, coupleID string, limit time.Time) ([]entities.FoodItem, error)
		UpdateItem(ctx context.Context, item *entities.FoodItem) error
		DeleteItem(ctx context.Context, coupleID string, itemID string) error
		CreateEvent(ctx context.Context, event *entities.FoodEvent) error
		GetEventsSince(ctx context.Context, coupleID string, since time.Time) ([]entities.FoodEvent, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodRepository) GetItemByID(ctx context.Context, coupleID string, itemID string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND couple_id = ?", itemID, coupleID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) GetItems(ctx context.Context, coupleID string) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("expiration_date asc").
		Find(&items).Error
	return items, err
}

func (r *foodRepository) GetItemsExpiringBefore(ctx context.Context, coupleID string, limit time.Time) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	err := r.db.WithContext(ctx).
		Where("couple_id = ? AND expiration_date < ?", coupleID, limit).
		Order("expiration_date asc").
		Find(&items).Error
	return items, err
}

func (r *foodRepository) UpdateItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodRepository) DeleteItem(ctx context.Context, coupleID string, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", itemID, coupleID).
		Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) CreateEvent(ctx context.Context, event *entities.FoodEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *foodRepository) GetEventsSince(ctx context.Context, coupleID string, since time.Time) ([]entities.FoodEvent, error) {
	var events []entities.FoodEvent
	err := r.db.WithContext(ctx).
		Where("couple_id = ? AND event_at >= ?", coupleID, since).
		Order("event_at asc").
		Find(&events).Error
	return events, err
}
