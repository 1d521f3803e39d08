package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &taskRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func taskColumns() []string {
	return []string{"id", "title", "description", "completed", "created_at", "user_id"}
}

func TestListTasks_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(1, "Buy milk", "Two litres", false, now, "user_1").
		AddRow(2, "Walk the dog", "Before work", true, now, "user_1")

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs("user_1").
		WillReturnRows(rows)

	tasks, err := repo.ListTasks(ctx, "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].TaskID != 1 || tasks[1].TaskID != 2 {
		t.Errorf("expected tasks ordered by id, got %d, %d", tasks[0].TaskID, tasks[1].TaskID)
	}
	if !tasks[1].Completed {
		t.Error("expected second task to be completed")
	}
}

func TestListTasks_EmptyResultIsNotAnError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs("user_1").
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	tasks, err := repo.ListTasks(ctx, "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestListTasks_QueryError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs("user_1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListTasks(ctx, "user_1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	task := models.Task{Title: "Buy milk", Description: "Two litres", UserID: "user_1"}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(42, task.Title, task.Description, false, time.Now(), task.UserID)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.Title, task.Description, task.UserID).
		WillReturnRows(rows)

	created, err := repo.CreateTask(ctx, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TaskID != 42 {
		t.Errorf("expected TaskID=42, got %d", created.TaskID)
	}
	if created.Completed {
		t.Error("expected new task to start incomplete")
	}
}

func TestCreateTask_DBError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateTask(ctx, models.Task{Title: "Buy milk"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(7, "Buy milk", "Two litres", false, time.Now(), "user_1")

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(7), "user_1").
		WillReturnRows(rows)

	task, err := repo.GetTask(ctx, "user_1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.TaskID != 7 {
		t.Errorf("expected TaskID=7, got %d", task.TaskID)
	}
}

func TestGetTask_NotFoundOrForeignOwner(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	// an existing task owned by someone else yields the same zero rows
	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(7), "user_2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTask(ctx, "user_2", 7)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	task := models.Task{
		TaskID:      7,
		Title:       "Buy milk",
		Description: "Two litres",
		Completed:   true,
		UserID:      "user_1",
	}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(task.TaskID, task.Title, task.Description, task.Completed, time.Now(), task.UserID)

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(task.Title, task.Description, task.Completed, task.TaskID, task.UserID).
		WillReturnRows(rows)

	updated, err := repo.UpdateTask(ctx, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected completed flag to be persisted")
	}
}

func TestUpdateTask_NotFoundOrForeignOwner(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateTask(ctx, models.Task{TaskID: 7, UserID: "user_2"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(7), "user_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTask(ctx, "user_1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTask_NotFoundOrForeignOwner(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(7), "user_2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTask(ctx, "user_2", 7)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
