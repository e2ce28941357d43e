package shopping

import (
	"context"
	"strings"
	"testing"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/grocery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeShoppingRepository struct {
	lists map[string]*entities.ShoppingList
	items map[string]*entities.ShoppingItem
}

func newFakeShoppingRepository() *fakeShoppingRepository {
	return &fakeShoppingRepository{
		lists: make(map[string]*entities.ShoppingList),
		items: make(map[string]*entities.ShoppingItem),
	}
}

func (f *fakeShoppingRepository) GetDefaultList(_ context.Context, coupleID string) (*entities.ShoppingList, error) {
	for _, list := range f.lists {
		if list.CoupleID.String() == coupleID {
			copied := *list
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShoppingRepository) CreateList(_ context.Context, list *entities.ShoppingList) error {
	copied := *list
	f.lists[list.ID.String()] = &copied
	return nil
}

func (f *fakeShoppingRepository) GetItems(_ context.Context, coupleID string, listID string) ([]entities.ShoppingItem, error) {
	var items []entities.ShoppingItem
	for _, item := range f.items {
		if item.CoupleID.String() == coupleID && item.ListID != nil && item.ListID.String() == listID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeShoppingRepository) GetItemByID(_ context.Context, coupleID string, itemID string) (*entities.ShoppingItem, error) {
	item, ok := f.items[itemID]
	if !ok || item.CoupleID.String() != coupleID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeShoppingRepository) FindUnpickedByName(_ context.Context, coupleID string, listID string, name string) (*entities.ShoppingItem, error) {
	for _, item := range f.items {
		if item.CoupleID.String() != coupleID || item.ListID == nil || item.ListID.String() != listID {
			continue
		}
		if !item.Picked && strings.EqualFold(item.Name, name) {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShoppingRepository) CreateItem(_ context.Context, item *entities.ShoppingItem) error {
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeShoppingRepository) UpdateItem(_ context.Context, item *entities.ShoppingItem) error {
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeShoppingRepository) DeleteItem(_ context.Context, coupleID string, itemID string) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeShoppingRepository) DeletePicked(_ context.Context, coupleID string, listID string) error {
	for id, item := range f.items {
		if item.CoupleID.String() == coupleID && item.ListID != nil && item.ListID.String() == listID && item.Picked {
			delete(f.items, id)
		}
	}
	return nil
}

func TestAddItemCreatesDefaultListOnFirstUse(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := NewShoppingService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "camembert"})
	require.NoError(t, err)

	assert.Equal(t, "camembert", res.Name)
	assert.Equal(t, grocery.CategoryFromagerie, res.Category)
	assert.Equal(t, 1, res.Quantity)
	require.Len(t, repo.lists, 1)
	for _, list := range repo.lists {
		assert.Equal(t, "Courses", list.Name)
	}
}

func TestAddItemMergesWithUnpickedDuplicate(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := NewShoppingService(repo)
	coupleID := uuid.NewString()

	first, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "Lait"})
	require.NoError(t, err)

	// case-insensitive match increments instead of duplicating
	second, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "lait"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)
	assert.Len(t, repo.items, 1)
}

func TestAddItemDoesNotMergeWithPickedItem(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := NewShoppingService(repo)
	coupleID := uuid.NewString()

	first, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "pain"})
	require.NoError(t, err)

	picked := true
	_, err = service.UpdateItem(context.Background(), coupleID, first.ID, domain.UpdateShoppingItemRequest{Picked: &picked})
	require.NoError(t, err)

	second, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "pain"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.items, 2)
}

func TestUpdateItemRenameReinfersCategory(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := NewShoppingService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "camembert"})
	require.NoError(t, err)
	require.Equal(t, grocery.CategoryFromagerie, res.Category)

	name := "fromage blanc"
	updated, err := service.UpdateItem(context.Background(), coupleID, res.ID, domain.UpdateShoppingItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, grocery.CategoryCremerie, updated.Category)
}

func TestClearPickedKeepsUnpickedItems(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := NewShoppingService(repo)
	coupleID := uuid.NewString()

	kept, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "riz"})
	require.NoError(t, err)
	dropped, err := service.AddItem(context.Background(), coupleID, domain.AddShoppingItemRequest{Name: "tomates"})
	require.NoError(t, err)

	picked := true
	_, err = service.UpdateItem(context.Background(), coupleID, dropped.ID, domain.UpdateShoppingItemRequest{Picked: &picked})
	require.NoError(t, err)

	require.NoError(t, service.ClearPicked(context.Background(), coupleID))

	items, err := service.GetItems(context.Background(), coupleID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)
}

func TestUpdateItemUnknownID(t *testing.T) {
	repo := newFakeShoppingRepository()
	service := NewShoppingService(repo)

	_, err := service.UpdateItem(context.Background(), uuid.NewString(), uuid.NewString(), domain.UpdateShoppingItemRequest{})
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}
