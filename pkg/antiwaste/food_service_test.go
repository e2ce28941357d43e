package antiwaste

import (
	"context"
	"testing"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/freshness"
	"Couple-Backend/pkg/grocery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items  map[string]*entities.FoodItem
	events []entities.FoodEvent
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{items: make(map[string]*entities.FoodItem)}
}

func (f *fakeFoodRepository) CreateItem(_ context.Context, item *entities.FoodItem) error {
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeFoodRepository) GetItemByID(_ context.Context, coupleID string, itemID string) (*entities.FoodItem, error) {
	item, ok := f.items[itemID]
	if !ok || item.CoupleID.String() != coupleID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeFoodRepository) GetItems(_ context.Context, coupleID string) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	for _, item := range f.items {
		if item.CoupleID.String() == coupleID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeFoodRepository) GetItemsExpiringBefore(_ context.Context, coupleID string, limit time.Time) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	for _, item := range f.items {
		if item.CoupleID.String() == coupleID && item.ExpirationDate.Before(limit) {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeFoodRepository) UpdateItem(_ context.Context, item *entities.FoodItem) error {
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeFoodRepository) DeleteItem(_ context.Context, coupleID string, itemID string) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeFoodRepository) CreateEvent(_ context.Context, event *entities.FoodEvent) error {
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeFoodRepository) GetEventsSince(_ context.Context, coupleID string, since time.Time) ([]entities.FoodEvent, error) {
	var events []entities.FoodEvent
	for _, event := range f.events {
		if event.CoupleID.String() == coupleID && !event.EventAt.Before(since) {
			events = append(events, event)
		}
	}
	return events, nil
}

func TestAddItemInfersCategoryAndStatus(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)
	coupleID := uuid.NewString()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	res, err := service.AddItem(context.Background(), coupleID, domain.AddFoodItemRequest{
		Name:           "camembert",
		Location:       "frigo",
		ExpirationDate: tomorrow,
	})
	require.NoError(t, err)

	assert.Equal(t, grocery.CategoryFromagerie, res.Category)
	assert.Equal(t, freshness.StatusSoon, res.Status)
	assert.Equal(t, 1, res.Quantity)
}

func TestAddItemRejectsBadExpirationDate(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)

	_, err := service.AddItem(context.Background(), uuid.NewString(), domain.AddFoodItemRequest{
		Name:           "lait",
		ExpirationDate: "31/12/2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestConsumePartialQuantityKeepsItem(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddItem(context.Background(), coupleID, domain.AddFoodItemRequest{
		Name:           "yaourt",
		ExpirationDate: time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
		Quantity:       4,
	})
	require.NoError(t, err)

	err = service.ConsumeItem(context.Background(), coupleID, res.ID, domain.ConsumeFoodItemRequest{Quantity: 1})
	require.NoError(t, err)

	item, err := repo.GetItemByID(context.Background(), coupleID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	require.Len(t, repo.events, 1)
	assert.Equal(t, EventConsumed, repo.events[0].EventType)
	assert.Equal(t, 1, repo.events[0].Quantity)
}

func TestConsumeWholeQuantityRemovesItem(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddItem(context.Background(), coupleID, domain.AddFoodItemRequest{
		Name:           "jambon",
		ExpirationDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		Quantity:       2,
	})
	require.NoError(t, err)

	// no quantity given consumes a single unit
	err = service.ConsumeItem(context.Background(), coupleID, res.ID, domain.ConsumeFoodItemRequest{})
	require.NoError(t, err)

	item, err := repo.GetItemByID(context.Background(), coupleID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	err = service.ConsumeItem(context.Background(), coupleID, res.ID, domain.ConsumeFoodItemRequest{})
	require.NoError(t, err)

	_, err = repo.GetItemByID(context.Background(), coupleID, res.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestConsumeMoreThanAvailableFails(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddItem(context.Background(), coupleID, domain.AddFoodItemRequest{
		Name:           "beurre",
		ExpirationDate: time.Now().AddDate(0, 0, 20).Format("2006-01-02"),
	})
	require.NoError(t, err)

	err = service.ConsumeItem(context.Background(), coupleID, res.ID, domain.ConsumeFoodItemRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestStatsCountConsumedAndDiscarded(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)
	coupleID := uuid.NewString()

	fresh, err := service.AddItem(context.Background(), coupleID, domain.AddFoodItemRequest{
		Name:           "salade",
		ExpirationDate: time.Now().AddDate(0, 0, 5).Format("2006-01-02"),
	})
	require.NoError(t, err)
	wasted, err := service.AddItem(context.Background(), coupleID, domain.AddFoodItemRequest{
		Name:           "poulet",
		ExpirationDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	require.NoError(t, err)

	require.NoError(t, service.ConsumeItem(context.Background(), coupleID, fresh.ID, domain.ConsumeFoodItemRequest{}))
	require.NoError(t, service.DiscardItem(context.Background(), coupleID, wasted.ID))

	stats, err := service.GetStats(context.Background(), coupleID, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.AvoidedWaste)
	assert.Equal(t, 1, stats.Discarded)
	assert.Equal(t, 0, stats.ConsumedAfterExpiry)
}

func TestSeriesCoversWholeWindow(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)
	coupleID := uuid.NewString()

	res, err := service.GetSeries(context.Background(), coupleID, 7, "day")
	require.NoError(t, err)

	assert.Equal(t, "day", res.Granularity)
	assert.Len(t, res.Points, 7)
	for _, p := range res.Points {
		assert.Zero(t, p.Total)
	}
}
