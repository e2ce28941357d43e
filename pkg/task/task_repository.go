package task

import (
	"context"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

type (
	TaskRepository interface {
		GetDefaultList(ctx context.Context, coupleID string) (*entities.TaskList, error)
		CreateList(ctx context.Context, list *entities.TaskList) error
		GetTasks(ctx context.Context, coupleID string, listID string) ([]entities.Task, error)
		GetTaskByID(ctx context.Context, coupleID string, taskID string) (*entities.Task, error)
		CreateTask(ctx context.Context, task *entities.Task) error
		UpdateTask(ctx context.Context, task *entities.Task) error
		DeleteTask(ctx context.Context, coupleID string, taskID string) error
	}

	taskRepository struct {
		db *gorm.DB
	}
)

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetDefaultList(ctx context.Context, coupleID string) (*entities.TaskList, error) {
	var list entities.TaskList
	err := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at asc").
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *taskRepository) CreateList(ctx context.Context, list *entities.TaskList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *taskRepository) GetTasks(ctx context.Context, coupleID string, listID string) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.WithContext(ctx).
		Where("couple_id = ? AND list_id = ?", coupleID, listID).
		Order("done asc, created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) GetTaskByID(ctx context.Context, coupleID string, taskID string) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		First(&task, "id = ? AND couple_id = ?", taskID, coupleID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) UpdateTask(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) DeleteTask(ctx context.Context, coupleID string, taskID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND couple_id = ?", taskID, coupleID).
		Delete(&entities.Task{}).Error
}
