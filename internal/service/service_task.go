package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	taskFieldMinLength = 2
	taskFieldMaxLength = 50
)

// taskService is the concrete implementation of TaskService. It validates
// client input and delegates to the owner-scoped TaskRepository; ownership
// enforcement itself lives in the repository's WHERE clauses.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// ListTasks returns all tasks owned by userID in creation order.
func (t *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := t.taskRepository.ListTasks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// CreateTask validates the request and persists a new task for userID.
// Completed always starts false regardless of the request body.
func (t *taskService) CreateTask(ctx context.Context, userID string, req models.TaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := validateTaskRequest(req); err != nil {
		log.Error().Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// GetTask fetches a single task owned by userID.
func (t *taskService) GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.taskRepository.GetTask(ctx, userID, taskID)
	if err != nil {
		log.Debug().Int64("task_id", taskID).Err(err).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return task, nil
}

// UpdateTask validates the request and fully replaces the mutable fields
// of the task (title, description, completed).
func (t *taskService) UpdateTask(ctx context.Context, userID string, taskID int64, req models.TaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := validateTaskRequest(req); err != nil {
		log.Error().Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	task := models.Task{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UserID:      userID,
	}

	updatedTask, err := t.taskRepository.UpdateTask(ctx, task)
	if err != nil {
		log.Debug().Int64("task_id", taskID).Err(err).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	return updatedTask, nil
}

// DeleteTask removes a task owned by userID.
func (t *taskService) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	log := logger.FromContext(ctx)

	if err := t.taskRepository.DeleteTask(ctx, userID, taskID); err != nil {
		log.Debug().Int64("task_id", taskID).Err(err).Msg("task deletion failed")
		return fmt.Errorf("task deletion failed: %w", err)
	}

	return nil
}

// validateTaskRequest applies the 2–50 character bounds to title and
// description, matching the validated client forms.
func validateTaskRequest(req models.TaskRequest) error {
	if len(req.Title) < taskFieldMinLength || len(req.Title) > taskFieldMaxLength {
		return ErrValidationTitle
	}

	if len(req.Description) < taskFieldMinLength || len(req.Description) > taskFieldMaxLength {
		return ErrValidationDescription
	}

	return nil
}
