package http

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies toggles the Secure attribute on every session cookie
	// the handler issues. Off only for local plain-HTTP development.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}
}
