package handlers

import (
	"strconv"

	"Couple-Backend/domain"
	"Couple-Backend/internal/api/presenters"
	"Couple-Backend/pkg/couple"
	"Couple-Backend/pkg/emotion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EmotionHandler interface {
		AddEmotion(c *fiber.Ctx) error
		GetEmotions(c *fiber.Ctx) error
		DeleteEmotion(c *fiber.Ctx) error
		GetEmotionStats(c *fiber.Ctx) error
		GetEmotionSeries(c *fiber.Ctx) error
	}

	emotionHandler struct {
		emotionService emotion.EmotionService
		coupleService  couple.CoupleService
		validator      *validator.Validate
	}
)

func NewEmotionHandler(emotionService emotion.EmotionService, coupleService couple.CoupleService, validator *validator.Validate) EmotionHandler {
	return &emotionHandler{
		emotionService: emotionService,
		coupleService:  coupleService,
		validator:      validator,
	}
}

func (h *emotionHandler) AddEmotion(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEmotion, err)
	}

	req := new(domain.AddEmotionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEmotion, err)
	}

	res, err := h.emotionService.AddEntry(c.Context(), coupleID, userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEmotion, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddEmotion)
}

func (h *emotionHandler) GetEmotions(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmotions, err)
	}

	res, err := h.emotionService.GetEntries(c.Context(), coupleID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmotions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEmotions)
}

func (h *emotionHandler) DeleteEmotion(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEmotion, err)
	}
	entryID := c.Params("id")

	if err := h.emotionService.DeleteEntry(c.Context(), coupleID, entryID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEmotion, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEmotion)
}

func (h *emotionHandler) GetEmotionStats(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmotionStats, err)
	}

	res, err := h.emotionService.GetStats(c.Context(), coupleID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmotionStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEmotionStats)
}

func (h *emotionHandler) GetEmotionSeries(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmotionStats, err)
	}

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 {
		days = 30
	}
	granularity := c.Query("granularity", "day")

	res, err := h.emotionService.GetSeries(c.Context(), coupleID, days, granularity)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmotionStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEmotionStats)
}
