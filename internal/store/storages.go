package store

import "github.com/MKhiriev/go-task-keeper/internal/logger"

type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	TaskRepository    TaskRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		TaskRepository:    NewTaskRepository(db, logger),
	}
}
