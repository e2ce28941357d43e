package handlers

import (
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/internal/api/presenters"
	"Couple-Backend/pkg/menstruation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenstruationHandler interface {
		StartPeriod(c *fiber.Ctx) error
		EndPeriod(c *fiber.Ctx) error
		UpdatePeriod(c *fiber.Ctx) error
		DeletePeriod(c *fiber.Ctx) error
		GetPeriods(c *fiber.Ctx) error
		AddSymptom(c *fiber.Ctx) error
		DeleteSymptom(c *fiber.Ctx) error
		GetSymptoms(c *fiber.Ctx) error
		GetSymptomSummary(c *fiber.Ctx) error
		GetCycleStats(c *fiber.Ctx) error
		GetCalendar(c *fiber.Ctx) error
	}

	menstruationHandler struct {
		menstruationService menstruation.MenstruationService
		validator           *validator.Validate
	}
)

func NewMenstruationHandler(menstruationService menstruation.MenstruationService, validator *validator.Validate) MenstruationHandler {
	return &menstruationHandler{
		menstruationService: menstruationService,
		validator:           validator,
	}
}

func (h *menstruationHandler) StartPeriod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.StartPeriodRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartPeriod, err)
	}

	res, err := h.menstruationService.StartPeriod(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartPeriod, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartPeriod)
}

func (h *menstruationHandler) EndPeriod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.menstruationService.EndCurrentPeriod(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEndPeriod, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEndPeriod)
}

func (h *menstruationHandler) UpdatePeriod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	periodID := c.Params("id")

	req := new(domain.UpdatePeriodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePeriod, err)
	}

	res, err := h.menstruationService.UpdatePeriod(c.Context(), userID, periodID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePeriod, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePeriod)
}

func (h *menstruationHandler) DeletePeriod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	periodID := c.Params("id")

	if err := h.menstruationService.DeletePeriod(c.Context(), userID, periodID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePeriod, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePeriod)
}

func (h *menstruationHandler) GetPeriods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.menstruationService.GetPeriods(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPeriods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPeriods)
}

func (h *menstruationHandler) AddSymptom(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	periodID := c.Params("id")

	req := new(domain.AddSymptomRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSymptom, err)
	}

	res, err := h.menstruationService.AddSymptom(c.Context(), userID, periodID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSymptom, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSymptom)
}

func (h *menstruationHandler) DeleteSymptom(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	symptomID := c.Params("id")

	if err := h.menstruationService.DeleteSymptom(c.Context(), userID, symptomID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSymptom, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSymptom)
}

func (h *menstruationHandler) GetSymptoms(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	periodID := c.Params("id")

	res, err := h.menstruationService.GetSymptoms(c.Context(), userID, periodID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSymptoms, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSymptoms)
}

func (h *menstruationHandler) GetSymptomSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.menstruationService.GetSymptomSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSymptoms, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSymptoms)
}

func (h *menstruationHandler) GetCycleStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.menstruationService.GetCycleStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCycleStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCycleStats)
}

func (h *menstruationHandler) GetCalendar(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now.AddDate(0, 2, 0)
	if q := c.Query("from"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalendar, err)
		}
		from = parsed
	}
	if q := c.Query("to"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalendar, err)
		}
		to = parsed
	}

	res, err := h.menstruationService.GetCalendar(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalendar, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCalendar)
}
