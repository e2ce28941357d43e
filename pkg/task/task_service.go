package task

import (
	"context"
	"errors"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/bucket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListName = "Général"

type (
	TaskService interface {
		GetTasks(ctx context.Context, coupleID string) ([]domain.TaskResponse, error)
		AddTask(ctx context.Context, coupleID string, req domain.AddTaskRequest) (domain.TaskResponse, error)
		ToggleTask(ctx context.Context, coupleID string, taskID string) (domain.TaskResponse, error)
		DeleteTask(ctx context.Context, coupleID string, taskID string) error
	}

	taskService struct {
		taskRepository TaskRepository
	}
)

func NewTaskService(taskRepository TaskRepository) TaskService {
	return &taskService{taskRepository: taskRepository}
}

func toTaskResponse(task entities.Task) domain.TaskResponse {
	res := domain.TaskResponse{
		ID:               task.ID.String(),
		Title:            task.Title,
		Done:             task.Done,
		Category:         task.Category,
		DueDate:          task.DueDate,
		IsRoutine:        task.IsRoutine,
		RoutineEveryDays: task.RoutineEveryDays,
		CompletedAt:      task.CompletedAt,
	}
	if task.AssignedTo != nil {
		res.AssignedTo = task.AssignedTo.String()
	}
	return res
}

func (s *taskService) ensureDefaultList(ctx context.Context, coupleID string) (*entities.TaskList, error) {
	list, err := s.taskRepository.GetDefaultList(ctx, coupleID)
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

	list = &entities.TaskList{
		ID:       uuid.New(),
		CoupleID: coupleUUID,
		Name:     defaultListName,
	}
	if err := s.taskRepository.CreateList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *taskService) GetTasks(ctx context.Context, coupleID string) ([]domain.TaskResponse, error) {
	list, err := s.ensureDefaultList(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.GetTasks(ctx, coupleID, list.ID.String())
	if err != nil {
		return nil, err
	}

	res := make([]domain.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		res = append(res, toTaskResponse(task))
	}
	return res, nil
}

func (s *taskService) AddTask(ctx context.Context, coupleID string, req domain.AddTaskRequest) (domain.TaskResponse, error) {
	list, err := s.ensureDefaultList(ctx, coupleID)
	if err != nil {
		return domain.TaskResponse{}, err
	}

	coupleUUID, err := uuid.Parse(coupleID)
	if err != nil {
		return domain.TaskResponse{}, domain.ErrParseUUID
	}

	task := &entities.Task{
		ID:       uuid.New(),
		CoupleID: coupleUUID,
		ListID:   &list.ID,
		Title:    req.Title,
		Category: req.Category,
	}

	if req.AssignedTo != "" {
		assignedTo, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return domain.TaskResponse{}, domain.ErrParseUUID
		}
		task.AssignedTo = &assignedTo
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return domain.TaskResponse{}, err
		}
		task.DueDate = &dueDate
	}
	if req.FrequencyDays != nil {
		task.IsRoutine = true
		task.RoutineEveryDays = req.FrequencyDays
		if task.DueDate == nil {
			due := bucket.StartOfDay(time.Now()).AddDate(0, 0, *req.FrequencyDays)
			task.DueDate = &due
		}
	}

	if err := s.taskRepository.CreateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}
	return toTaskResponse(*task), nil
}

// ToggleTask flips completion. Completing a routine task immediately re-opens
// it with the due date pushed by its frequency, so recurring chores never
// leave the list.
func (s *taskService) ToggleTask(ctx context.Context, coupleID string, taskID string) (domain.TaskResponse, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, coupleID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TaskResponse{}, domain.ErrTaskNotFound
		}
		return domain.TaskResponse{}, err
	}

	now := time.Now()
	if task.Done {
		task.Done = false
		task.CompletedAt = nil
	} else if task.IsRoutine && task.RoutineEveryDays != nil {
		task.Done = false
		task.CompletedAt = &now
		due := bucket.StartOfDay(now).AddDate(0, 0, *task.RoutineEveryDays)
		task.DueDate = &due
	} else {
		task.Done = true
		task.CompletedAt = &now
	}

	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}
	return toTaskResponse(*task), nil
}

func (s *taskService) DeleteTask(ctx context.Context, coupleID string, taskID string) error {
	if _, err := s.taskRepository.GetTaskByID(ctx, coupleID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	return s.taskRepository.DeleteTask(ctx, coupleID, taskID)
}
