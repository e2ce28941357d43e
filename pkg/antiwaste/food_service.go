package antiwaste

import (
	"context"
	"errors"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/bucket"
	"Couple-Backend/pkg/freshness"
	"Couple-Backend/pkg/grocery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const expirationDateLayout = "2006-01-02"

type (
	FoodService interface {
		AddItem(ctx context.Context, coupleID string, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateItem(ctx context.Context, coupleID string, itemID string, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteItem(ctx context.Context, coupleID string, itemID string) error
		GetItems(ctx context.Context, coupleID string) ([]domain.FoodItemResponse, error)
		GetExpiringSoon(ctx context.Context, coupleID string) ([]domain.FoodItemResponse, error)
		ConsumeItem(ctx context.Context, coupleID string, itemID string, req domain.ConsumeFoodItemRequest) error
		DiscardItem(ctx context.Context, coupleID string, itemID string) error
		GetStats(ctx context.Context, coupleID string, days int) (domain.AntiWasteStatsResponse, error)
		GetSeries(ctx context.Context, coupleID string, days int, granularity string) (domain.AntiWasteSeriesResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func toFoodItemResponse(item entities.FoodItem, today time.Time) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Category:       item.Category,
		Location:       item.Location,
		ExpirationDate: item.ExpirationDate,
		Quantity:       item.Quantity,
		Status:         freshness.Classify(item.ExpirationDate, today, freshness.DefaultSoonThresholdDays),
		RelativeDays:   freshness.RelativeDaysLabel(item.ExpirationDate, today),
		CreatedAt:      item.CreatedAt,
	}
}

func (s *foodService) AddItem(ctx context.Context, coupleID string, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	coupleUUID, err := uuid.Parse(coupleID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	expirationDate, err := time.Parse(expirationDateLayout, req.ExpirationDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpirationDate
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	category := req.Category
	if category == "" {
		category = grocery.InferCategory(req.Name)
	}

	today := time.Now()
	item := &entities.FoodItem{
		ID:             uuid.New(),
		CoupleID:       coupleUUID,
		Name:           req.Name,
		Category:       category,
		Location:       req.Location,
		ExpirationDate: expirationDate,
		Quantity:       quantity,
		Status:         freshness.Classify(expirationDate, today, freshness.DefaultSoonThresholdDays),
	}

	if err := s.foodRepository.CreateItem(ctx, item); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(*item, today), nil
}

func (s *foodService) UpdateItem(ctx context.Context, coupleID string, itemID string, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	item, err := s.foodRepository.GetItemByID(ctx, coupleID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse(expirationDateLayout, req.ExpirationDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = expirationDate
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}

	today := time.Now()
	item.Status = freshness.Classify(item.ExpirationDate, today, freshness.DefaultSoonThresholdDays)

	if err := s.foodRepository.UpdateItem(ctx, item); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(*item, today), nil
}

func (s *foodService) DeleteItem(ctx context.Context, coupleID string, itemID string) error {
	if _, err := s.foodRepository.GetItemByID(ctx, coupleID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	return s.foodRepository.DeleteItem(ctx, coupleID, itemID)
}

func (s *foodService) GetItems(ctx context.Context, coupleID string) ([]domain.FoodItemResponse, error) {
	items, err := s.foodRepository.GetItems(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFoodItemResponse(item, today))
	}
	return res, nil
}

func (s *foodService) GetExpiringSoon(ctx context.Context, coupleID string) ([]domain.FoodItemResponse, error) {
	today := time.Now()
	limit := bucket.StartOfDay(today).AddDate(0, 0, freshness.DefaultSoonThresholdDays+1)

	items, err := s.foodRepository.GetItemsExpiringBefore(ctx, coupleID, limit)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFoodItemResponse(item, today))
	}
	return res, nil
}

// recordEvent snapshots the item into the event log, decrements its quantity
// and deletes the row once nothing is left. quantity <= 0 means everything
// that remains.
func (s *foodService) recordEvent(ctx context.Context, coupleID string, itemID string, eventType string, quantity int) error {
	item, err := s.foodRepository.GetItemByID(ctx, coupleID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if quantity <= 0 {
		quantity = item.Quantity
	}
	if quantity > item.Quantity {
		return domain.ErrInvalidQuantity
	}

	event := &entities.FoodEvent{
		ID:             uuid.New(),
		CoupleID:       item.CoupleID,
		ItemID:         item.ID,
		Name:           item.Name,
		Category:       item.Category,
		Location:       item.Location,
		EventType:      eventType,
		Quantity:       quantity,
		ExpirationDate: item.ExpirationDate,
		EventAt:        time.Now(),
	}
	if err := s.foodRepository.CreateEvent(ctx, event); err != nil {
		return err
	}

	item.Quantity -= quantity
	if item.Quantity <= 0 {
		return s.foodRepository.DeleteItem(ctx, coupleID, itemID)
	}
	return s.foodRepository.UpdateItem(ctx, item)
}

func (s *foodService) ConsumeItem(ctx context.Context, coupleID string, itemID string, req domain.ConsumeFoodItemRequest) error {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return s.recordEvent(ctx, coupleID, itemID, EventConsumed, quantity)
}

func (s *foodService) DiscardItem(ctx context.Context, coupleID string, itemID string) error {
	return s.recordEvent(ctx, coupleID, itemID, EventDiscarded, 0)
}

func (s *foodService) GetStats(ctx context.Context, coupleID string, days int) (domain.AntiWasteStatsResponse, error) {
	if days <= 0 {
		days = 30
	}

	today := time.Now()
	from := bucket.StartOfDay(today).AddDate(0, 0, -(days - 1))

	events, err := s.foodRepository.GetEventsSince(ctx, coupleID, from)
	if err != nil {
		return domain.AntiWasteStatsResponse{}, err
	}

	summary := SummarizeEvents(events)
	return domain.AntiWasteStatsResponse{
		RangeFrom:            from,
		RangeTo:              today,
		ConsumedBeforeExpiry: summary.ConsumedBeforeExpiry,
		ConsumedAfterExpiry:  summary.ConsumedAfterExpiry,
		Discarded:            summary.Discarded,
		AvoidedWaste:         summary.AvoidedWaste,
	}, nil
}

func (s *foodService) GetSeries(ctx context.Context, coupleID string, days int, granularity string) (domain.AntiWasteSeriesResponse, error) {
	if days <= 0 {
		days = 30
	}
	g := bucket.ParseGranularity(granularity)

	today := time.Now()
	from := bucket.StartOfDay(today).AddDate(0, 0, -(days - 1))

	events, err := s.foodRepository.GetEventsSince(ctx, coupleID, from)
	if err != nil {
		return domain.AntiWasteSeriesResponse{}, err
	}

	points := AggregateSeries(events, from, today, g)
	res := domain.AntiWasteSeriesResponse{
		Granularity: string(g),
		Points:      make([]domain.AntiWasteSeriesPoint, 0, len(points)),
	}
	for _, p := range points {
		res.Points = append(res.Points, domain.AntiWasteSeriesPoint{
			Key:       p.Key,
			Label:     p.Label,
			Avoided:   p.Avoided,
			Discarded: p.Discarded,
			Total:     p.Total,
		})
	}
	return res, nil
}
