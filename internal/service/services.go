package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	TaskService    TaskService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		SessionService: NewSessionService(storages.SessionRepository, cfg.App, logger),
		TaskService:    NewTaskService(storages.TaskRepository, logger),
	}
}
