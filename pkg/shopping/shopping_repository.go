package shopping

import (
	"context"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetDefaultList(ctx context.Context, coupleID string) (*entities.ShoppingList, error)
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		GetItems(ctx context.Context, coupleID string, listID string) ([]entities.ShoppingItem, error)
		GetItemByID(ctx context.Context, coupleID string, itemID string) (*entities.ShoppingItem, error)
		FindUnpickedByName(ctx context.Context, coupleID string, listID string, name string) (*entities.ShoppingItem, error)
		CreateItem(ctx context.Context, item *entities.ShoppingItem) error
		UpdateItem(ctx context.Context, item *entities.ShoppingItem) error
		DeleteItem(ctx context.Context, coupleID string, itemID string) error
		DeletePicked(ctx context.Context, coupleID string, listID string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetDefaultList(ctx context.Context, coupleID string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at asc").
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingRepository) GetItems(ctx context.Context, coupleID string, listID string) ([]entities.ShoppingItem, error) {
	var items []entities.ShoppingItem
	err := r.db.WithContext(ctx).
		Where("couple_id = ? AND list_id = ?", coupleID, listID).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, coupleID string, itemID string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND couple_id = ?", itemID, coupleID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) FindUnpickedByName(ctx context.Context, coupleID string, listID string, name string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	err := r.db.WithContext(ctx).
		Where("couple_id = ? AND list_id = ? AND picked = false AND lower(name) = lower(?)", coupleID, listID, name).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) CreateItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, coupleID string, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", itemID, coupleID).
		Delete(&entities.ShoppingItem{}).Error
}

func (r *shoppingRepository) DeletePicked(ctx context.Context, coupleID string, listID string) error {
	return r.db.WithContext(ctx).
		Where("couple_id = ? AND list_id = ? AND picked = true", coupleID, listID).
		Delete(&entities.ShoppingItem{}).Error
}
