package domain

import (
	"errors"

	"Couple-Backend/pkg/grocery"
)

var (
	MessageSuccessGetShoppingItems   = "shopping items retrieved successfully"
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping item removed successfully"
	MessageSuccessClearPicked        = "picked items cleared successfully"

	MessageFailedGetShoppingItems   = "failed to retrieve shopping items"
	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedDeleteShoppingItem = "failed to remove shopping item"
	MessageFailedClearPicked        = "failed to clear picked items"

	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrShoppingItemNotFound = errors.New("shopping item not found")
)

type (
	AddShoppingItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"omitempty"`
	}

	UpdateShoppingItemRequest struct {
		Name     *string `json:"name" validate:"omitempty,min=1"`
		Category *string `json:"category" validate:"omitempty"`
		Quantity *int    `json:"quantity" validate:"omitempty,min=1"`
		Picked   *bool   `json:"picked" validate:"omitempty"`
	}

	ShoppingItemResponse struct {
		ID            string        `json:"id"`
		ListID        string        `json:"list_id"`
		Name          string        `json:"name"`
		Category      string        `json:"category"`
		CategoryIcon  string        `json:"category_icon"`
		CategoryStyle grocery.Style `json:"category_style"`
		SectionRank   float64       `json:"section_rank"`
		Quantity      int           `json:"quantity"`
		Picked        bool          `json:"picked"`
	}
)
