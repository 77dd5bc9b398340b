package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService *service.TaskService
	exporter    *service.TaskExporter
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	taskService *service.TaskService,
	exporter *service.TaskExporter,
	log *slog.Logger,
) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		exporter:    exporter,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET / requests. It returns the requester's tasks
// ordered by deadline together with the overdue and upcoming subsets.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	listing, err := h.taskService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks:    listing.Tasks,
		Overdue:  listing.Overdue,
		Upcoming: listing.Upcoming,
	})
}

// ListTasksJSON handles GET /tasks/json/ requests. It returns the
// requester's tasks as flat records suitable for machine consumption.
func (h *TaskHandler) ListTasksJSON(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	records, err := h.exporter.Records(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to serialize tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// ExportTasks handles GET /tasks/export/ requests. The format query
// parameter selects the output encoding: json (default), csv, or pdf.
func (h *TaskHandler) ExportTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	data, contentType, err := h.exporter.Export(r.Context(), userID, format)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export tasks")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="tasks.`+format+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write export response", slog.String("error", err.Error()))
	}
}

// GetTaskFormOptions handles GET /task/create requests. It returns the
// categories the requester may attach to a new task: their own, nobody
// else's.
func (h *TaskHandler) GetTaskFormOptions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	categories, err := h.taskService.SelectableCategories(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskFormOptionsResponse{Categories: categories})
}

// CreateTask handles POST /task/create requests. The owner is always the
// authenticated requester regardless of the payload.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
		Priority:    domain.TaskPriority(req.Priority),
		Deadline:    req.Deadline,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// GetTaskDetail handles GET /task/{id}/detail/ requests. Only the owner
// may view a task.
func (h *TaskHandler) GetTaskDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	now := time.Now().UTC()
	shared.RespondWithJSON(w, r, http.StatusOK, TaskDetailResponse{
		Task:     task,
		Overdue:  task.IsOverdue(now),
		TimeLeft: task.TimeLeft(now).String(),
	})
}

// GetTaskEditForm handles GET /task/{id}/edit/ requests. It returns the
// task together with the requester's categories; owner-only.
func (h *TaskHandler) GetTaskEditForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	categories, err := h.taskService.SelectableCategories(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Task       *domain.Task       `json:"task"`
		Categories []*domain.Category `json:"categories"`
	}{Task: task, Categories: categories})
}

// UpdateTask handles POST /task/{id}/edit/ requests. Every field is
// replaced; status moves in either direction. Owner-only.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
		Priority:    domain.TaskPriority(req.Priority),
		Deadline:    req.Deadline,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	log.Debug("task updated",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles POST /task/{id}/delete/ requests. Owner-only.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	log.Debug("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusNoContent)
}
