package task

import (
	"context"
	"testing"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTaskRepository struct {
	lists map[string]*entities.TaskList
	tasks map[string]*entities.Task
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{
		lists: make(map[string]*entities.TaskList),
		tasks: make(map[string]*entities.Task),
	}
}

func (f *fakeTaskRepository) GetDefaultList(_ context.Context, coupleID string) (*entities.TaskList, error) {
	for _, list := range f.lists {
		if list.CoupleID.String() == coupleID {
			copied := *list
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskRepository) CreateList(_ context.Context, list *entities.TaskList) error {
	copied := *list
	f.lists[list.ID.String()] = &copied
	return nil
}

func (f *fakeTaskRepository) GetTasks(_ context.Context, coupleID string, listID string) ([]entities.Task, error) {
	var tasks []entities.Task
	for _, task := range f.tasks {
		if task.CoupleID.String() == coupleID && task.ListID != nil && task.ListID.String() == listID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (f *fakeTaskRepository) GetTaskByID(_ context.Context, coupleID string, taskID string) (*entities.Task, error) {
	task, ok := f.tasks[taskID]
	if !ok || task.CoupleID.String() != coupleID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskRepository) CreateTask(_ context.Context, task *entities.Task) error {
	copied := *task
	f.tasks[task.ID.String()] = &copied
	return nil
}

func (f *fakeTaskRepository) UpdateTask(_ context.Context, task *entities.Task) error {
	copied := *task
	f.tasks[task.ID.String()] = &copied
	return nil
}

func (f *fakeTaskRepository) DeleteTask(_ context.Context, coupleID string, taskID string) error {
	delete(f.tasks, taskID)
	return nil
}

func TestAddTaskCreatesDefaultList(t *testing.T) {
	repo := newFakeTaskRepository()
	service := NewTaskService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddTask(context.Background(), coupleID, domain.AddTaskRequest{Title: "sortir les poubelles"})
	require.NoError(t, err)

	assert.Equal(t, "sortir les poubelles", res.Title)
	assert.False(t, res.Done)
	assert.False(t, res.IsRoutine)
	require.Len(t, repo.lists, 1)
	for _, list := range repo.lists {
		assert.Equal(t, "Général", list.Name)
	}
}

func TestAddRoutineTaskGetsDueDate(t *testing.T) {
	repo := newFakeTaskRepository()
	service := NewTaskService(repo)
	coupleID := uuid.NewString()

	every := 7
	res, err := service.AddTask(context.Background(), coupleID, domain.AddTaskRequest{
		Title:         "arroser les plantes",
		FrequencyDays: &every,
	})
	require.NoError(t, err)

	assert.True(t, res.IsRoutine)
	require.NotNil(t, res.RoutineEveryDays)
	assert.Equal(t, 7, *res.RoutineEveryDays)
	require.NotNil(t, res.DueDate)

	wantDue := time.Now().AddDate(0, 0, 7)
	assert.Equal(t, wantDue.Year(), res.DueDate.Year())
	assert.Equal(t, wantDue.YearDay(), res.DueDate.YearDay())
}

func TestToggleSimpleTaskCompletes(t *testing.T) {
	repo := newFakeTaskRepository()
	service := NewTaskService(repo)
	coupleID := uuid.NewString()

	res, err := service.AddTask(context.Background(), coupleID, domain.AddTaskRequest{Title: "vaisselle"})
	require.NoError(t, err)

	toggled, err := service.ToggleTask(context.Background(), coupleID, res.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)
	assert.NotNil(t, toggled.CompletedAt)

	back, err := service.ToggleTask(context.Background(), coupleID, res.ID)
	require.NoError(t, err)
	assert.False(t, back.Done)
	assert.Nil(t, back.CompletedAt)
}

func TestToggleRoutineTaskReopensWithPushedDueDate(t *testing.T) {
	repo := newFakeTaskRepository()
	service := NewTaskService(repo)
	coupleID := uuid.NewString()

	every := 3
	res, err := service.AddTask(context.Background(), coupleID, domain.AddTaskRequest{
		Title:         "changer les draps",
		FrequencyDays: &every,
	})
	require.NoError(t, err)

	toggled, err := service.ToggleTask(context.Background(), coupleID, res.ID)
	require.NoError(t, err)

	// routine tasks never stay done, completion pushes the due date instead
	assert.False(t, toggled.Done)
	require.NotNil(t, toggled.CompletedAt)
	require.NotNil(t, toggled.DueDate)

	wantDue := time.Now().AddDate(0, 0, 3)
	assert.Equal(t, wantDue.YearDay(), toggled.DueDate.YearDay())
}

func TestToggleUnknownTask(t *testing.T) {
	repo := newFakeTaskRepository()
	service := NewTaskService(repo)

	_, err := service.ToggleTask(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
