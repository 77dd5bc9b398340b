package api

import (
	"log/slog"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}

	return &CategoryHandler{
		categoryService: categoryService,
		logger:          log.With(slog.String("component", "category_handler")),
	}
}

// ListCategories handles GET /categories/ requests. It returns the
// requester's categories together with the empty and full subsets.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	listing, err := h.categoryService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryListResponse{
		Categories: listing.Categories,
		Empty:      listing.Empty,
		Full:       listing.Full,
	})
}

// GetCategoryCreateForm handles GET /categories/create/ requests. Unlike the
// task form, a category form has no selector to populate, so it returns an
// empty scaffold with the expected fields.
func (h *CategoryHandler) GetCategoryCreateForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if _, ok := getUserIDFromContext(r); !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryRequest{})
}

// CreateCategory handles POST /categories/create/ requests. The owner is
// always the authenticated requester.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.categoryService.Create(r.Context(), userID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	log.Debug("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// GetCategory handles GET /category/{id}/edit/ requests. It returns the
// category for form prefill; owner-only.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categoryService.Get(r.Context(), userID, categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// RenameCategory handles POST /category/{id}/edit/ requests. Owner-only.
func (h *CategoryHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.categoryService.Rename(r.Context(), userID, categoryID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to rename category")
		return
	}

	log.Debug("category renamed",
		slog.String("category_id", category.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// GetCategoryDetail handles GET /{id}/detail/ requests. It returns the
// category with its tasks partitioned by completion status; owner-only.
func (h *CategoryHandler) GetCategoryDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.categoryService.Detail(r.Context(), userID, categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get category detail")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryDetailResponse{
		Category:  detail.Category,
		Completed: detail.Completed,
		Pending:   detail.Pending,
	})
}

// DeleteCategory handles POST /{id}/delete/ requests. Tasks in the
// category survive; only the membership rows go away. Owner-only.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.categoryService.Delete(r.Context(), userID, categoryID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}

	log.Debug("category deleted",
		slog.String("category_id", categoryID.String()),
		slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusNoContent)
}
