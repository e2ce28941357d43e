package shopping

import (
	"context"
	"errors"
	"strings"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/grocery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListName = "Courses"

type (
	ShoppingService interface {
		GetItems(ctx context.Context, coupleID string) ([]domain.ShoppingItemResponse, error)
		AddItem(ctx context.Context, coupleID string, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error)
		UpdateItem(ctx context.Context, coupleID string, itemID string, req domain.UpdateShoppingItemRequest) (domain.ShoppingItemResponse, error)
		DeleteItem(ctx context.Context, coupleID string, itemID string) error
		ClearPicked(ctx context.Context, coupleID string) error
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func toShoppingItemResponse(item entities.ShoppingItem) domain.ShoppingItemResponse {
	res := domain.ShoppingItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Category:      item.Category,
		CategoryIcon:  grocery.CategoryIcon(item.Category),
		CategoryStyle: grocery.CategoryStyle(item.Category),
		SectionRank:   grocery.SectionRank(item.Category),
		Quantity:      item.Quantity,
		Picked:        item.Picked,
	}
	if item.ListID != nil {
		res.ListID = item.ListID.String()
	}
	return res
}

// ensureDefaultList returns the couple's list, creating the default one on
// first use.
func (s *shoppingService) ensureDefaultList(ctx context.Context, coupleID string) (*entities.ShoppingList, error) {
	list, err := s.shoppingRepository.GetDefaultList(ctx, coupleID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	coupleUUID, err := uuid.Parse(coupleID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	list = &entities.ShoppingList{
		ID:       uuid.New(),
		CoupleID: coupleUUID,
		Name:     defaultListName,
	}
	if err := s.shoppingRepository.CreateList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *shoppingService) GetItems(ctx context.Context, coupleID string) ([]domain.ShoppingItemResponse, error) {
	list, err := s.ensureDefaultList(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	items, err := s.shoppingRepository.GetItems(ctx, coupleID, list.ID.String())
	if err != nil {
		return nil, err
	}

	res := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toShoppingItemResponse(item))
	}
	return res, nil
}

// AddItem merges with an existing unpicked item of the same name instead of
// duplicating the row.
func (s *shoppingService) AddItem(ctx context.Context, coupleID string, req domain.AddShoppingItemRequest) (domain.ShoppingItemResponse, error) {
	list, err := s.ensureDefaultList(ctx, coupleID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	existing, err := s.shoppingRepository.FindUnpickedByName(ctx, coupleID, list.ID.String(), name)
	if err == nil {
		existing.Quantity++
		if err := s.shoppingRepository.UpdateItem(ctx, existing); err != nil {
			return domain.ShoppingItemResponse{}, err
		}
		return toShoppingItemResponse(*existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ShoppingItemResponse{}, err
	}

	category := req.Category
	if category == "" {
		category = grocery.InferCategory(name)
	}

	coupleUUID, err := uuid.Parse(coupleID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.ShoppingItem{
		ID:       uuid.New(),
		CoupleID: coupleUUID,
		ListID:   &list.ID,
		Name:     name,
		Category: category,
		Quantity: 1,
	}
	if err := s.shoppingRepository.CreateItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	return toShoppingItemResponse(*item), nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, coupleID string, itemID string, req domain.UpdateShoppingItemRequest) (domain.ShoppingItemResponse, error) {
	item, err := s.shoppingRepository.GetItemByID(ctx, coupleID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.ShoppingItemResponse{}, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
		if req.Category == nil {
			item.Category = grocery.InferCategory(item.Name)
		}
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Picked != nil {
		item.Picked = *req.Picked
	}

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	return toShoppingItemResponse(*item), nil
}

func (s *shoppingService) DeleteItem(ctx context.Context, coupleID string, itemID string) error {
	if _, err := s.shoppingRepository.GetItemByID(ctx, coupleID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}
	return s.shoppingRepository.DeleteItem(ctx, coupleID, itemID)
}

func (s *shoppingService) ClearPicked(ctx context.Context, coupleID string) error {
	list, err := s.ensureDefaultList(ctx, coupleID)
	if err != nil {
		return err
	}
	return s.shoppingRepository.DeletePicked(ctx, coupleID, list.ID.String())
}
