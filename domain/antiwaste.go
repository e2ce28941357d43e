package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem     = "food item added successfully"
	MessageSuccessUpdateFoodItem  = "food item updated successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessConsumeFoodItem = "food item consumed"
	MessageSuccessDiscardFoodItem = "food item discarded"
	MessageSuccessGetStats        = "anti-waste statistics retrieved successfully"
	MessageSuccessGetSeries       = "anti-waste series retrieved successfully"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedConsumeFoodItem = "failed to consume food item"
	MessageFailedDiscardFoodItem = "failed to discard food item"
	MessageFailedGetStats        = "failed to retrieve anti-waste statistics"
	MessageFailedGetSeries       = "failed to retrieve anti-waste series"

	ErrFoodItemNotFound      = errors.New("food item not found")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
)

type (
	AddFoodItemRequest struct {
		Name           string `json:"name" validate:"required"`
		Category       string `json:"category" validate:"omitempty"`
		Location       string `json:"location" validate:"omitempty,oneof=frigo placard congelateur"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateFoodItemRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Category       string `json:"category" validate:"omitempty"`
		Location       string `json:"location" validate:"omitempty,oneof=frigo placard congelateur"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
	}

	FoodItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Category       string    `json:"category,omitempty"`
		Location       string    `json:"location,omitempty"`
		ExpirationDate time.Time `json:"expiration_date"`
		Quantity       int       `json:"quantity"`
		Status         string    `json:"status"`
		RelativeDays   string    `json:"relative_days"`
		CreatedAt      time.Time `json:"created_at"`
	}

	ConsumeFoodItemRequest struct {
		Quantity int `json:"quantity" validate:"omitempty,min=1"`
	}

	AntiWasteSeriesPoint struct {
		Key       string `json:"key"`
		Label     string `json:"label"`
		Avoided   int    `json:"avoided"`
		Discarded int    `json:"discarded"`
		Total     int    `json:"total"`
	}

	AntiWasteSeriesResponse struct {
		Granularity string                 `json:"granularity"`
		Points      []AntiWasteSeriesPoint `json:"points"`
	}

	AntiWasteStatsResponse struct {
		RangeFrom            time.Time `json:"range_from"`
		RangeTo              time.Time `json:"range_to"`
		ConsumedBeforeExpiry int       `json:"consumed_before_expiry"`
		ConsumedAfterExpiry  int       `json:"consumed_after_expiry"`
		Discarded            int       `json:"discarded"`
		AvoidedWaste         int       `json:"avoided_waste"`
	}
)
