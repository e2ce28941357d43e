package handlers

import (
	"Couple-Backend/domain"
	"Couple-Backend/internal/api/presenters"
	"Couple-Backend/pkg/couple"
	"Couple-Backend/pkg/task"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TaskHandler interface {
		GetTasks(c *fiber.Ctx) error
		AddTask(c *fiber.Ctx) error
		ToggleTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
	}

	taskHandler struct {
		taskService   task.TaskService
		coupleService couple.CoupleService
		validator     *validator.Validate
	}
)

func NewTaskHandler(taskService task.TaskService, coupleService couple.CoupleService, validator *validator.Validate) TaskHandler {
	return &taskHandler{
		taskService:   taskService,
		coupleService: coupleService,
		validator:     validator,
	}
}

func (h *taskHandler) GetTasks(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	res, err := h.taskService.GetTasks(c.Context(), coupleID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *taskHandler) AddTask(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	req := new(domain.AddTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	res, err := h.taskService.AddTask(c.Context(), coupleID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddTask)
}

func (h *taskHandler) ToggleTask(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleTask, err)
	}
	taskID := c.Params("id")

	res, err := h.taskService.ToggleTask(c.Context(), coupleID, taskID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleTask)
}

func (h *taskHandler) DeleteTask(c *fiber.Ctx) error {
	coupleID, err := coupleIDFor(c, h.coupleService)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTask, err)
	}
	taskID := c.Params("id")

	if err := h.taskService.DeleteTask(c.Context(), coupleID, taskID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}
