package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddTask    = "task added successfully"
	MessageSuccessGetTasks   = "tasks retrieved successfully"
	MessageSuccessToggleTask = "task updated successfully"
	MessageSuccessDeleteTask = "task deleted successfully"

	MessageFailedAddTask    = "failed to add task"
	MessageFailedGetTasks   = "failed to retrieve tasks"
	MessageFailedToggleTask = "failed to update task"
	MessageFailedDeleteTask = "failed to delete task"

	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskListNotFound = errors.New("task list not found")
)

type (
	AddTaskRequest struct {
		Title         string `json:"title" validate:"required"`
		Category      string `json:"category" validate:"omitempty"`
		AssignedTo    string `json:"assigned_to" validate:"omitempty,uuid"`
		FrequencyDays *int   `json:"frequency_days" validate:"omitempty,min=1"`
		DueDate       string `json:"due_date" validate:"omitempty"`
	}

	TaskResponse struct {
		ID               string     `json:"id"`
		Title            string     `json:"title"`
		Done             bool       `json:"done"`
		Category         string     `json:"category,omitempty"`
		AssignedTo       string     `json:"assigned_to,omitempty"`
		DueDate          *time.Time `json:"due_date,omitempty"`
		IsRoutine        bool       `json:"is_routine"`
		RoutineEveryDays *int       `json:"routine_every_days,omitempty"`
		CompletedAt      *time.Time `json:"completed_at,omitempty"`
	}
)
