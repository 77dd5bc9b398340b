package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Phone and Age are optional profile fields.
type RegisterRequest struct {
	Email    string `json:"email"           validate:"required,email"`
	Password string `json:"password"        validate:"required,min=12,max=72"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=21"`
	Age      *int   `json:"age,omitempty"   validate:"omitempty,min=0"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT token used for API authorization
	Token string `json:"token"`
}

// CreateTaskRequest defines the payload for task creation.
// The owner is never part of the payload; it is always the authenticated
// requester.
type CreateTaskRequest struct {
	Title       string      `json:"title"        validate:"required,max=150"`
	Description string      `json:"description"  validate:"max=720"`
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"omitempty,dive,required"`
	Priority    string      `json:"priority"     validate:"required,oneof=urgent_important urgent_unimportant not_urgent_important not_urgent_unimportant"`
	Deadline    time.Time   `json:"deadline"     validate:"required"`
}

// UpdateTaskRequest defines the payload for task updates. Every field is
// replaced, matching form semantics; status may move in either direction.
type UpdateTaskRequest struct {
	Title       string      `json:"title"        validate:"required,max=150"`
	Description string      `json:"description"  validate:"max=720"`
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"omitempty,dive,required"`
	Priority    string      `json:"priority"     validate:"required,oneof=urgent_important urgent_unimportant not_urgent_important not_urgent_unimportant"`
	Deadline    time.Time   `json:"deadline"     validate:"required"`
	Status      string      `json:"status"       validate:"required,oneof=incomplete done"`
}

// CategoryRequest defines the payload for category creation and renaming.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// TaskListResponse defines the response for the task index: the full list
// ordered by deadline plus the overdue/upcoming subsets relative to now.
type TaskListResponse struct {
	Tasks    []*domain.Task `json:"tasks"`
	Overdue  []*domain.Task `json:"overdue"`
	Upcoming []*domain.Task `json:"upcoming"`
}

// TaskDetailResponse defines the response for a single task, including the
// remaining time until its deadline (negative when overdue).
type TaskDetailResponse struct {
	Task     *domain.Task `json:"task"`
	Overdue  bool         `json:"overdue"`
	TimeLeft string       `json:"time_left"`
}

// TaskFormOptionsResponse lists the categories a requester may attach to a
// task. Only the requester's own categories are ever offered.
type TaskFormOptionsResponse struct {
	Categories []*domain.Category `json:"categories"`
}

// CategoryListResponse defines the response for the category index: the
// full list plus the empty/full subsets over the same collection.
type CategoryListResponse struct {
	Categories []*domain.Category `json:"categories"`
	Empty      []*domain.Category `json:"empty"`
	Full       []*domain.Category `json:"full"`
}

// CategoryDetailResponse defines the response for a single category with
// its tasks partitioned by completion status.
type CategoryDetailResponse struct {
	Category  *domain.Category `json:"category"`
	Completed []*domain.Task   `json:"completed"`
	Pending   []*domain.Task   `json:"pending"`
}
