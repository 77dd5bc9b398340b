package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. All methods
// that return tasks populate the CategoryIDs field from the task_categories
// join table.
type TaskStore interface {
	// Create saves a new task and its category memberships to the store.
	// The insert and the membership rows are written in one transaction.
	// Returns ErrDuplicateTaskTitle if the owner already has a task with
	// the same title.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByUser retrieves all tasks owned by the given user, ordered by
	// deadline ascending (the default ordering for any listing).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// ListByCategory retrieves all tasks that belong to the given category,
	// ordered by deadline ascending.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error)

	// Update modifies an existing task. The category membership set is
	// replaced with the task's CategoryIDs in the same transaction.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns ErrDuplicateTaskTitle on a (title, owner) collision.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID. Membership rows are
	// removed by the database-level cascade.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
