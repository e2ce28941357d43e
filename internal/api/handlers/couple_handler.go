package handlers

import (
	"Couple-Backend/domain"
	"Couple-Backend/internal/api/presenters"
	"Couple-Backend/pkg/couple"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CoupleHandler interface {
		GetMyCouple(c *fiber.Ctx) error
		JoinCouple(c *fiber.Ctx) error
		UpdateCouple(c *fiber.Ctx) error
		RegenerateInviteCode(c *fiber.Ctx) error
		SendInvite(c *fiber.Ctx) error
	}

	coupleHandler struct {
		coupleService couple.CoupleService
		validator     *validator.Validate
	}
)

func NewCoupleHandler(coupleService couple.CoupleService, validator *validator.Validate) CoupleHandler {
	return &coupleHandler{
		coupleService: coupleService,
		validator:     validator,
	}
}

func (h *coupleHandler) GetMyCouple(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.coupleService.EnsureCouple(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCouple, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCouple)
}

func (h *coupleHandler) JoinCouple(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.JoinCoupleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinCouple, err)
	}

	res, err := h.coupleService.JoinByCode(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinCouple, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessJoinCouple)
}

func (h *coupleHandler) UpdateCouple(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateCoupleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCouple, err)
	}

	if err := h.coupleService.UpdateCouple(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCouple, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCouple)
}

func (h *coupleHandler) RegenerateInviteCode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	code, err := h.coupleService.RegenerateInviteCode(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegenerateInvite, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"invite_code": code}, fiber.StatusOK, domain.MessageSuccessRegenerateInvite)
}

func (h *coupleHandler) SendInvite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendInviteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendInvite, err)
	}

	if err := h.coupleService.SendInvite(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendInvite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendInvite)
}
