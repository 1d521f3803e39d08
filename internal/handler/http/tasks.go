package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, service.ErrSessionNotFound)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing tasks failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, service.ErrSessionNotFound)
		return
	}

	var request models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationTitle), errors.Is(err, service.ErrValidationDescription):
			log.Err(err).Msg("invalid task data provided")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task creation")
			writeError(w, err)
			return
		}
	}

	log.Debug().Int64("task_id", task.TaskID).Msg("task successfully created")

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, service.ErrSessionNotFound)
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid task id in URL")
		writeError(w, store.ErrTaskNotFound)
		return
	}

	task, err := h.services.TaskService.GetTask(ctx, userID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			log.Err(err).Int64("task_id", taskID).Msg("task not found")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task lookup")
			writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, service.ErrSessionNotFound)
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid task id in URL")
		writeError(w, store.ErrTaskNotFound)
		return
	}

	var request models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, userID, taskID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationTitle), errors.Is(err, service.ErrValidationDescription):
			log.Err(err).Msg("invalid task data provided")
			writeError(w, err)
			return
		case errors.Is(err, store.ErrTaskNotFound):
			log.Err(err).Int64("task_id", taskID).Msg("task not found")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task update")
			writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, service.ErrSessionNotFound)
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid task id in URL")
		writeError(w, store.ErrTaskNotFound)
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			log.Err(err).Int64("task_id", taskID).Msg("task not found")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task deletion")
			writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Task deleted successfully"}, http.StatusOK)
}

// taskIDFromRequest parses the {id} URL parameter. Non-numeric values are
// rejected so that callers can treat them as a missing task.
func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
