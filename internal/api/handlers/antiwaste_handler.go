package handlers

import (
	"strconv"

	"Couple-Backend/domain"
	"Couple-Backend/internal/api/presenters"
	"Couple-Backend/pkg/antiwaste"
	"Couple-Backend/pkg/couple"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AntiWasteHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetExpiringSoon(c *fiber.Ctx) error
		ConsumeFoodItem(c *fiber.Ctx) error
		DiscardFoodItem(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
		GetSeries(c *fiber.Ctx) error
	}

	antiWasteHandler struct {
		foodService   antiwaste.FoodService
		coupleService couple.CoupleService
		validator     *validator.Validate
	}
)

func NewAntiWasteHandler(foodService antiwaste.FoodService, coupleService couple.CoupleService, validator *validator.Validate) AntiWasteHandler {
	return &antiWasteHandler{
		foodService:   foodService,
		coupleService: coupleService,
		validator:     validator,
	}
}

func (h *antiWasteHandler) AddFoodItem(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	req := new(domain.AddFoodItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddItem(c.Context(), coupleID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *antiWasteHandler) UpdateFoodItem(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}
	itemID := c.Params("id")

	req := new(domain.UpdateFoodItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	res, err := h.foodService.UpdateItem(c.Context(), coupleID, itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *antiWasteHandler) DeleteFoodItem(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}
	itemID := c.Params("id")

	if err := h.foodService.DeleteItem(c.Context(), coupleID, itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *antiWasteHandler) GetFoodItems(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	items, err := h.foodService.GetItems(c.Context(), coupleID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *antiWasteHandler) GetExpiringSoon(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	items, err := h.foodService.GetExpiringSoon(c.Context(), coupleID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *antiWasteHandler) ConsumeFoodItem(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeFoodItem, err)
	}
	itemID := c.Params("id")

	req := new(domain.ConsumeFoodItemRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.foodService.ConsumeItem(c.Context(), coupleID, itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConsumeFoodItem)
}

func (h *antiWasteHandler) DiscardFoodItem(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscardFoodItem, err)
	}
	itemID := c.Params("id")

	if err := h.foodService.DiscardItem(c.Context(), coupleID, itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscardFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDiscardFoodItem)
}

func (h *antiWasteHandler) GetStats(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 {
		days = 30
	}

	stats, err := h.foodService.GetStats(c.Context(), coupleID, days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *antiWasteHandler) GetSeries(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSeries, err)
	}

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 {
		days = 30
	}
	granularity := c.Query("granularity", "day")

	series, err := h.foodService.GetSeries(c.Context(), coupleID, days, granularity)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSeries, err)
	}

	return presenters.SuccessResponse(c, series, fiber.StatusOK, domain.MessageSuccessGetSeries)
}
