package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
//
// Every statement carries the owner's user_id in its WHERE clause, so an
// owner mismatch produces the same zero-rows outcome as a nonexistent task
// and surfaces as [ErrTaskNotFound]. The repository never answers
// "forbidden": existence of other users' tasks must not leak.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// ListTasks returns all tasks owned by userID in creation order (ascending id).
func (r *taskRepository) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTasks, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.Title, &task.Description, &task.Completed, &task.CreatedAt, &task.UserID); err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// CreateTask persists a new task and returns it with the server-assigned
// id, completed flag (false) and created_at.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.Title, task.Description, task.UserID)

	var saved models.Task
	if err := row.Scan(&saved.TaskID, &saved.Title, &saved.Description, &saved.Completed, &saved.CreatedAt, &saved.UserID); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error creating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetTask fetches a single task by id, scoped to its owner.
func (r *taskRepository) GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := r.db.QueryRowContext(ctx, getTask, taskID, userID)

	if err := row.Scan(&task.TaskID, &task.Title, &task.Description, &task.Completed, &task.CreatedAt, &task.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error: unexpected DB error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// UpdateTask performs a full replace of the mutable fields (title,
// description, completed). The query is built with squirrel and returns
// the updated row; sql.ErrNoRows maps to [ErrTaskNotFound].
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(task.TableName()).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("completed", task.Completed).
		Where(sq.Eq{"id": task.TaskID, "user_id": task.UserID}).
		Suffix("RETURNING id, title, description, completed, created_at, user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Task
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updated.TaskID, &updated.Title, &updated.Description, &updated.Completed, &updated.CreatedAt, &updated.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: unexpected DB error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes a task scoped to its owner. Zero affected rows →
// [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTask, taskID, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
